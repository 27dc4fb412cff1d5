package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/stopwatch"
	"github.com/inovacc/burnr/internal/store"
)

var docStyle = lipgloss.NewStyle().Margin(1, 2)

type sessionItem struct {
	session model.Session
}

func (i sessionItem) Title() string {
	description := i.session.Description
	if description == "" {
		description = "(no description)"
	}

	cost := i.session.ParsedCurrency().FormatAmount(i.session.Cost)

	return fmt.Sprintf("%s — %s", description, cost)
}

func (i sessionItem) Description() string {
	return fmt.Sprintf("%s | %d attendees | %s",
		i.session.EndedAt.Format("2006-01-02 15:04"),
		i.session.Attendees,
		stopwatch.Format(i.session.Duration),
	)
}

func (i sessionItem) FilterValue() string {
	return i.session.Description
}

// SessionListModel is the interactive history browser.
type SessionListModel struct {
	list     list.Model
	db       store.Store
	selected *model.Session
	err      error
	quitting bool
}

func (m SessionListModel) Init() tea.Cmd {
	return nil
}

func (m SessionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true

			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(sessionItem)
			if ok {
				m.selected = &i.session
			}

			return m, tea.Quit

		case "d":
			i, ok := m.list.SelectedItem().(sessionItem)
			if ok {
				if err := m.db.RemoveSessionByUID(i.session.UID); err != nil {
					m.err = err

					return m, nil
				}

				m.list.RemoveItem(m.list.Index())
			}

			return m, nil
		}
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m SessionListModel) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n", m.err)
	}

	return docStyle.Render(m.list.View())
}

// GetSelectedSession returns the session chosen with enter, if any.
func (m SessionListModel) GetSelectedSession() *model.Session {
	return m.selected
}

// NewSessionList loads the recorded sessions into an interactive list.
func NewSessionList(db store.Store) (SessionListModel, error) {
	sessions, err := db.GetAllSessions()
	if err != nil {
		return SessionListModel{err: err}, err
	}

	items := make([]list.Item, len(sessions))
	for i, session := range sessions {
		items[i] = sessionItem{session: session}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Meeting history"
	l.SetShowStatusBar(false)

	return SessionListModel{list: l, db: db}, nil
}
