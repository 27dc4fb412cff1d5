package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/burnr/internal/cli"
	"github.com/inovacc/burnr/internal/currency"
	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/store"
	"github.com/spf13/cobra"
)

var (
	showConfig  bool
	resetConfig bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure burnr defaults",
	Long:  `Interactively configure the defaults every new meeting starts with: attendee count, hourly rate, and currency.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showConfig {
			return printConfig()
		}

		if resetConfig {
			defaults := model.DefaultConfig()
			if err := store.GetDB().SaveConfig(&defaults); err != nil {
				return err
			}

			fmt.Println("Configuration reset to defaults.")

			return nil
		}

		if err := printConfig(); err != nil {
			fmt.Println("No configuration found, using defaults.")
		}

		fmt.Println("\nStarting interactive configuration...")

		m, err := cli.NewConfigureModel(store.GetDB())
		if err != nil {
			return err
		}

		p := tea.NewProgram(&m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		configModel := finalModel.(*cli.ConfigureModel)
		if configModel.Err != nil {
			return configModel.Err
		}

		return nil
	},
}

func printConfig() error {
	cfg, err := store.GetDB().GetConfig()
	if err != nil {
		return err
	}

	cur, err := currency.Parse(cfg.DefaultCurrency)
	if err != nil {
		cur = currency.Euro
	}

	fmt.Println("Current defaults:")
	fmt.Printf("  Attendees:   %d\n", cfg.DefaultAttendees)
	fmt.Printf("  Hourly rate: %s\n", cur.FormatAmount(cfg.DefaultHourlyRate))
	fmt.Printf("  Currency:    %s\n", cur.LongName())

	return nil
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVarP(&showConfig, "show", "s", false, "Show current configuration")
	configureCmd.Flags().BoolVarP(&resetConfig, "reset", "r", false, "Reset configuration to defaults")
}
