package cmd

import (
	"fmt"

	"github.com/inovacc/burnr/internal/application"
	"github.com/inovacc/burnr/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", application.AppName, version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
