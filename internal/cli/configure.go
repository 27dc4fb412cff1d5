package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/burnr/internal/currency"
	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/store"
)

var (
	helpStyleConfigure = blurredStyle

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = fmt.Sprintf("[ %s ]", blurredStyle.Render("Submit"))
)

// ConfigureModel edits the defaults a fresh meeting is seeded with.
type ConfigureModel struct {
	focusIndex int
	inputs     []textinput.Model
	db         store.Store
	Saved      bool
	Err        error
}

func NewConfigureModel(db store.Store) (ConfigureModel, error) {
	cfg, err := db.GetConfig()
	if err != nil {
		return ConfigureModel{}, err
	}

	m := ConfigureModel{
		inputs: make([]textinput.Model, 3),
		db:     db,
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 64

		switch i {
		case 0:
			t.Placeholder = "10"
			t.CharLimit = 6
			t.SetValue(strconv.Itoa(cfg.DefaultAttendees))
			t.Focus()
			t.PromptStyle = focusedStyle
			t.TextStyle = focusedStyle
		case 1:
			t.Placeholder = "100"
			t.CharLimit = 12
			t.SetValue(strconv.FormatFloat(cfg.DefaultHourlyRate, 'f', -1, 64))
		case 2:
			t.Placeholder = "euro, usdollar or swedishkrona"
			t.SetValue(cfg.DefaultCurrency)
		}

		m.inputs[i] = t
	}

	return m, nil
}

func (m *ConfigureModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ConfigureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case successMsg:
		m.Saved = true
		return m, tea.Quit
	case errMsg:
		m.Err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.saveConfig
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].PromptStyle = focusedStyle
					m.inputs[i].TextStyle = focusedStyle

					continue
				}

				m.inputs[i].Blur()
				m.inputs[i].PromptStyle = noStyle
				m.inputs[i].TextStyle = noStyle
			}

			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m *ConfigureModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *ConfigureModel) View() string {
	if m.Saved {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Render("\n  ✓ Defaults saved successfully!\n\n")
	}

	if m.Err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render(fmt.Sprintf("\n  ✗ Error: %v\n\n", m.Err))
	}

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	s := headerStyle.Render("Configure burnr defaults") + "\n"
	s += blurredStyle.Render("These values seed every new meeting") + "\n\n"
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Default attendees:"), m.inputs[0].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Default hourly rate:"), m.inputs[1].View())
	s += fmt.Sprintf(fmtField, blurredStyle.Render("Default currency:"), m.inputs[2].View())

	button := &blurredButton
	if m.focusIndex == len(m.inputs) {
		button = &focusedButton
	}

	s += fmt.Sprintf("\n\n %s\n\n", *button)
	s += helpStyleConfigure.Render(" tab/shift+tab: navigate • enter: submit • esc: quit")

	return s
}

func (m *ConfigureModel) saveConfig() tea.Msg {
	defaults := model.DefaultConfig()

	attendees, err := strconv.Atoi(m.inputs[0].Value())
	if err != nil || attendees < 0 {
		attendees = defaults.DefaultAttendees
	}

	rate, err := strconv.ParseFloat(m.inputs[1].Value(), 64)
	if err != nil || rate < 0 {
		rate = defaults.DefaultHourlyRate
	}

	cur, err := currency.Parse(m.inputs[2].Value())
	if err != nil {
		cur = currency.Euro
	}

	cfg := &model.Config{
		DefaultAttendees:  attendees,
		DefaultHourlyRate: rate,
		DefaultCurrency:   cur.String(),
	}

	if err := m.db.SaveConfig(cfg); err != nil {
		return errMsg{err}
	}

	return successMsg{}
}

type successMsg struct{}
type errMsg struct{ err error }
