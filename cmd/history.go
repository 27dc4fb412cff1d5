package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/burnr/internal/cli"
	"github.com/inovacc/burnr/internal/encoding"
	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/stopwatch"
	"github.com/inovacc/burnr/internal/store"
	"github.com/spf13/cobra"
)

var (
	exportPath string
	importPath string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded meetings",
	Long: `Interactively browse the meetings recorded so far. Use --export to dump
the history as JSON, or --import to merge a previously exported file back in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()

		if exportPath != "" {
			sessions, err := db.GetAllSessions()
			if err != nil {
				return err
			}

			if err := encoding.SaveJSON(exportPath, sessions); err != nil {
				return err
			}

			fmt.Printf("Exported %d sessions to %s\n", len(sessions), exportPath)

			return nil
		}

		if importPath != "" {
			return importSessions(db, importPath)
		}

		m, err := cli.NewSessionList(db)
		if err != nil {
			return err
		}

		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		listModel := finalModel.(cli.SessionListModel)
		if selected := listModel.GetSelectedSession(); selected != nil {
			cost := selected.ParsedCurrency().FormatAmount(selected.Cost)
			fmt.Printf("%s: %d attendees for %s, %s\n",
				selected.EndedAt.Format("2006-01-02"),
				selected.Attendees,
				stopwatch.Format(selected.Duration),
				cost,
			)
		}

		return nil
	},
}

func importSessions(db store.Store, path string) error {
	sessions, err := encoding.LoadJSON[[]model.Session](path)
	if err != nil {
		return err
	}

	if sessions == nil {
		return fmt.Errorf("file %s does not exist", path)
	}

	imported := 0

	for i := range *sessions {
		session := (*sessions)[i]
		if err := db.SaveSession(&session); err != nil {
			return fmt.Errorf("importing session %s: %w", session.UID, err)
		}

		imported++
	}

	fmt.Printf("Imported %d sessions from %s\n", imported, path)

	return nil
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().StringVar(&exportPath, "export", "", "Write the history as JSON to the given file")
	historyCmd.Flags().StringVar(&importPath, "import", "", "Merge sessions from a previously exported JSON file")
}
