package cmd

import (
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/burnr/internal/application"
	"github.com/inovacc/burnr/internal/cli"
	"github.com/inovacc/burnr/internal/monitor"
	"github.com/inovacc/burnr/internal/settings"
	"github.com/inovacc/burnr/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	initOnce  sync.Once
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A meeting cost tracker",
	Long: `Burnr is a terminal meeting-cost tracker. Enter the attendee count,
hourly rate, currency and a description, start the clock, and watch the
elapsed time and accrued cost update every second. Finished meetings are
kept in a local history.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initOnce.Do(func() {
			if debugMode {
				if _, err := monitor.StartAgent(); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: diagnostics agent failed to start: %v\n", err)
				}
			}
		})
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("%s requires an interactive terminal", application.AppName)
		}

		m, err := cli.NewMeetingModel(store.GetDB(), settings.Load())
		if err != nil {
			return err
		}

		p := tea.NewProgram(m)
		_, err = p.Run()

		return err
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Start a gops diagnostics agent")
}
