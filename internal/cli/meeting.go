package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inovacc/burnr/internal/currency"
	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/settings"
	"github.com/inovacc/burnr/internal/stopwatch"
	"github.com/inovacc/burnr/internal/store"
)

const fmtField = " %s\n %s\n\n"

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle  = focusedStyle
	noStyle      = lipgloss.NewStyle()
)

// Form field order: currency selector, then the text inputs, then the start
// button. The selector is index 0 and the button is the last slot.
const (
	inputAttendees = iota
	inputHourlyRate
	inputDescription
	inputCount
)

// tickMsg is the 1-second timer signal. It is delivered into Update like any
// key press, so transitions never interleave.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// MeetingModel is the Bubble Tea model driving the meeting tracker. It owns
// the single authoritative model.Meeting value; every incoming message is
// routed through the pure transitions in the model package.
type MeetingModel struct {
	meeting    model.Meeting
	cfg        model.Config
	db         store.Store
	prefs      settings.Settings
	inputs     []textinput.Model
	focusIndex int
	currencyAt int
	startedAt  time.Time
	quitting   bool
}

// NewMeetingModel builds the tracker seeded from the stored defaults.
func NewMeetingModel(db store.Store, prefs settings.Settings) (MeetingModel, error) {
	cfg, err := db.GetConfig()
	if err != nil {
		return MeetingModel{}, err
	}

	m := MeetingModel{
		cfg:    *cfg,
		db:     db,
		prefs:  prefs,
		inputs: make([]textinput.Model, inputCount),
	}

	m.meeting = model.NewMeeting(m.cfg)
	m.currencyAt = currencyIndex(m.meeting.Currency)
	m.resetInputs()

	return m, nil
}

func currencyIndex(c currency.Currency) int {
	for i, cur := range currency.All() {
		if cur == c {
			return i
		}
	}

	return 0
}

func (m *MeetingModel) resetInputs() {
	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = cursorStyle
		t.CharLimit = 256

		switch i {
		case inputAttendees:
			t.Placeholder = "10"
			t.CharLimit = 6
			t.SetValue(strconv.Itoa(m.meeting.Attendees))
		case inputHourlyRate:
			t.Placeholder = "100"
			t.CharLimit = 12
			t.SetValue(strconv.FormatFloat(m.meeting.HourlyRate, 'f', -1, 64))
		case inputDescription:
			t.Placeholder = "What is this meeting about?"
			t.SetValue(m.meeting.Description)
		}

		m.inputs[i] = t
	}

	m.focusIndex = 0
}

func (m MeetingModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

func (m MeetingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Ticks keep arriving in every state; the transition ignores them
		// unless the meeting is running.
		m.meeting = m.meeting.Tick()

		return m, tickCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true

			return m, tea.Quit
		}

		switch m.meeting.Status {
		case model.StatusNew:
			return m.updateForm(msg)
		case model.StatusStarted:
			return m.updateStarted(msg)
		case model.StatusPaused:
			return m.updatePaused(msg)
		}
	}

	cmd := m.updateInputs(msg)

	return m, cmd
}

// focusSlots is the number of focusable form slots: the currency selector,
// the text inputs and the start button.
func (m MeetingModel) focusSlots() int {
	return len(m.inputs) + 2
}

func (m MeetingModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttonAt := m.focusSlots() - 1

	switch s := msg.String(); s {
	case "esc":
		m.quitting = true

		return m, tea.Quit

	case "left", "right":
		if m.focusIndex == 0 {
			all := currency.All()

			if s == "left" {
				m.currencyAt = (m.currencyAt + len(all) - 1) % len(all)
			} else {
				m.currencyAt = (m.currencyAt + 1) % len(all)
			}

			m.meeting = m.meeting.WithCurrency(all[m.currencyAt].String())

			return m, nil
		}

	case "tab", "shift+tab", "enter", "up", "down":
		if s == "enter" && m.focusIndex == buttonAt {
			return m.startMeeting()
		}

		if s == "up" || s == "shift+tab" {
			m.focusIndex--
		} else {
			m.focusIndex++
		}

		if m.focusIndex > buttonAt {
			m.focusIndex = 0
		} else if m.focusIndex < 0 {
			m.focusIndex = buttonAt
		}

		cmds := make([]tea.Cmd, len(m.inputs))
		for i := range m.inputs {
			if i+1 == m.focusIndex {
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

	cmd := m.updateInputs(msg)

	return m, cmd
}

func (m MeetingModel) updateStarted(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		m.meeting = m.meeting.Pause()
	case "q", "esc":
		m.quitting = true

		return m, tea.Quit
	}

	return m, nil
}

func (m MeetingModel) updatePaused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		m.meeting = m.meeting.Start()
	case "n":
		return m.endMeeting()
	case "q", "esc":
		m.quitting = true

		return m, tea.Quit
	}

	return m, nil
}

func (m MeetingModel) startMeeting() (tea.Model, tea.Cmd) {
	m.meeting = m.meeting.Start()
	m.startedAt = time.Now()

	return m, nil
}

// endMeeting records the finished session and replaces the meeting wholesale
// with a fresh default one, returning to the form view.
func (m MeetingModel) endMeeting() (tea.Model, tea.Cmd) {
	session := model.NewSession(m.meeting, m.startedAt, time.Now())

	if err := m.db.SaveSession(&session); err != nil {
		// History is best effort; the tracker keeps working without it.
		slog.Error("failed to record session", "error", err)
	}

	m.meeting = model.NewMeeting(m.cfg)
	m.currencyAt = currencyIndex(m.meeting.Currency)
	m.resetInputs()

	return m, textinput.Blink
}

// updateInputs forwards msg to the text inputs and re-derives the meeting
// from their raw values, so the state machine sees every edit.
func (m *MeetingModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))

	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	m.meeting = m.meeting.
		WithAttendees(m.inputs[inputAttendees].Value()).
		WithHourlyRate(m.inputs[inputHourlyRate].Value()).
		WithDescription(m.inputs[inputDescription].Value())

	return tea.Batch(cmds...)
}

func (m MeetingModel) View() string {
	if m.quitting {
		return ""
	}

	if m.meeting.Status == model.StatusNew {
		return m.viewForm()
	}

	return m.viewDashboard()
}

func (m MeetingModel) viewForm() string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.prefs.AccentColor))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.prefs.MutedColor))

	s := accent.Render("burnr — meeting cost tracker") + "\n"
	s += muted.Render("Set up the meeting and start the clock") + "\n\n"

	selector := fmt.Sprintf("‹ %s ›", m.meeting.Currency.LongName())
	if m.focusIndex == 0 {
		selector = focusedStyle.Render(selector)
	}

	s += fmt.Sprintf(fmtField, muted.Render("Currency:"), selector)
	s += fmt.Sprintf(fmtField, muted.Render("Attendees:"), m.inputs[inputAttendees].View())
	s += fmt.Sprintf(fmtField, muted.Render("Hourly rate per attendee:"), m.inputs[inputHourlyRate].View())
	s += fmt.Sprintf(fmtField, muted.Render("Description:"), m.inputs[inputDescription].View())

	button := fmt.Sprintf("[ %s ]", blurredStyle.Render("Start meeting"))
	if m.focusIndex == m.focusSlots()-1 {
		button = focusedStyle.Render("[ Start meeting ]")
	}

	s += fmt.Sprintf("\n %s\n", button)

	if m.prefs.ShowHelp {
		s += "\n" + muted.Render(" tab: navigate • ←/→: currency • enter: start • esc: quit")
	}

	return s
}

func (m MeetingModel) viewDashboard() string {
	accent := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.prefs.AccentColor))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.prefs.MutedColor))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.prefs.MutedColor)).
		Padding(0, 2)

	liveCard := card.BorderForeground(lipgloss.Color(m.prefs.AccentColor))

	title := "Meeting in progress"
	if m.meeting.Status == model.StatusPaused {
		title = "Meeting paused"
	}

	description := m.meeting.Description
	if description == "" {
		description = "(no description)"
	}

	summary := lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render(fmt.Sprintf("%s\n%d", muted.Render("Attendees"), m.meeting.Attendees)),
		card.Render(fmt.Sprintf("%s\n%s", muted.Render("Hourly rate"), m.meeting.Currency.FormatAmount(m.meeting.HourlyRate))),
		card.Render(fmt.Sprintf("%s\n%s", muted.Render("Description"), description)),
	)

	live := lipgloss.JoinHorizontal(lipgloss.Top,
		liveCard.Render(fmt.Sprintf("%s\n%s", muted.Render("Duration"), stopwatch.Format(m.meeting.Duration))),
		liveCard.Render(fmt.Sprintf("%s\n%s", muted.Render("Cost"), accent.Render(m.meeting.Currency.FormatAmount(m.meeting.Cost())))),
	)

	s := accent.Render(title) + "\n\n"
	s += summary + "\n"
	s += live + "\n"

	// Timer controls are part of the dashboard itself; ShowHelp only
	// gates the generic navigation hint.
	controls := " p: pause"
	if m.meeting.Status == model.StatusPaused {
		controls = " r: resume • n: new meeting"
	}

	if m.prefs.ShowHelp {
		controls += " • q: quit"
	}

	s += "\n" + muted.Render(controls)

	return s
}

// Meeting exposes the current meeting state, mainly for tests.
func (m MeetingModel) Meeting() model.Meeting {
	return m.meeting
}
