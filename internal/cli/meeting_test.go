package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/burnr/internal/currency"
	"github.com/inovacc/burnr/internal/model"
	"github.com/inovacc/burnr/internal/settings"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory store.Store used to drive the models in tests.
type memStore struct {
	sessions []model.Session
	cfg      model.Config
}

func newMemStore() *memStore {
	return &memStore{cfg: model.DefaultConfig()}
}

func (s *memStore) Ping() error  { return nil }
func (s *memStore) Close() error { return nil }

func (s *memStore) SaveSession(sess *model.Session) error {
	if sess.UID == "" {
		sess.UID = "test-uid"
	}

	s.sessions = append(s.sessions, *sess)

	return nil
}

func (s *memStore) GetAllSessions() ([]model.Session, error) {
	return s.sessions, nil
}

func (s *memStore) RemoveSessionByUID(uid string) error {
	for i, sess := range s.sessions {
		if sess.UID == uid {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return nil
		}
	}

	return nil
}

func (s *memStore) GetConfig() (*model.Config, error) {
	cfg := s.cfg
	return &cfg, nil
}

func (s *memStore) SaveConfig(cfg *model.Config) error {
	s.cfg = *cfg
	return nil
}

func newTestModel(t *testing.T) (MeetingModel, *memStore) {
	t.Helper()

	db := newMemStore()

	m, err := NewMeetingModel(db, settings.Default())
	require.NoError(t, err)

	return m, db
}

func press(t *testing.T, m MeetingModel, msg tea.Msg) MeetingModel {
	t.Helper()

	updated, _ := m.Update(msg)

	got, ok := updated.(MeetingModel)
	require.True(t, ok, "Update returned %T, want MeetingModel", updated)

	return got
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// startMeeting tabs to the start button and presses enter.
func startMeeting(t *testing.T, m MeetingModel) MeetingModel {
	t.Helper()

	for range m.focusSlots() - 1 {
		m = press(t, m, key(tea.KeyTab))
	}

	m = press(t, m, key(tea.KeyEnter))
	require.Equal(t, model.StatusStarted, m.Meeting().Status)

	return m
}

func TestMeetingModel_StartsWithDefaults(t *testing.T) {
	m, _ := newTestModel(t)

	meeting := m.Meeting()
	require.Equal(t, model.StatusNew, meeting.Status)
	require.Equal(t, 10, meeting.Attendees)
	require.Equal(t, 100.0, meeting.HourlyRate)
	require.Equal(t, currency.Euro, meeting.Currency)
	require.Equal(t, 0, meeting.Duration)
}

func TestMeetingModel_CurrencySelectorCycles(t *testing.T) {
	m, _ := newTestModel(t)

	m = press(t, m, key(tea.KeyRight))
	require.Equal(t, currency.UsDollar, m.Meeting().Currency)

	m = press(t, m, key(tea.KeyRight))
	require.Equal(t, currency.SwedishKrona, m.Meeting().Currency)

	m = press(t, m, key(tea.KeyRight))
	require.Equal(t, currency.Euro, m.Meeting().Currency)

	m = press(t, m, key(tea.KeyLeft))
	require.Equal(t, currency.SwedishKrona, m.Meeting().Currency)
}

func TestMeetingModel_EditingAttendeesFeedsStateMachine(t *testing.T) {
	m, _ := newTestModel(t)

	// Focus the attendees input and append a digit to the seeded "10".
	m = press(t, m, key(tea.KeyTab))
	m = press(t, m, runes("5"))

	require.Equal(t, 105, m.Meeting().Attendees)

	// Blanking the field falls back to zero, not an error.
	m = press(t, m, key(tea.KeyBackspace))
	m = press(t, m, key(tea.KeyBackspace))
	m = press(t, m, key(tea.KeyBackspace))

	require.Equal(t, 0, m.Meeting().Attendees)
}

func TestMeetingModel_TicksOnlyAdvanceWhileStarted(t *testing.T) {
	m, _ := newTestModel(t)

	// Ticks in the form view are ignored.
	m = press(t, m, tickMsg(time.Now()))
	require.Equal(t, 0, m.Meeting().Duration)

	m = startMeeting(t, m)

	for range 5 {
		m = press(t, m, tickMsg(time.Now()))
	}

	require.Equal(t, 5, m.Meeting().Duration)

	// Paused: frozen.
	m = press(t, m, runes("p"))
	require.Equal(t, model.StatusPaused, m.Meeting().Status)

	m = press(t, m, tickMsg(time.Now()))
	require.Equal(t, 5, m.Meeting().Duration)
}

func TestMeetingModel_PauseResumeEnd(t *testing.T) {
	m, db := newTestModel(t)

	m = startMeeting(t, m)

	for range 3 {
		m = press(t, m, tickMsg(time.Now()))
	}

	m = press(t, m, runes("p"))
	require.Equal(t, model.StatusPaused, m.Meeting().Status)

	m = press(t, m, runes("r"))
	require.Equal(t, model.StatusStarted, m.Meeting().Status)

	m = press(t, m, tickMsg(time.Now()))
	m = press(t, m, runes("p"))

	// End the meeting: the session is recorded and the model returns to a
	// fresh default meeting.
	m = press(t, m, runes("n"))

	meeting := m.Meeting()
	require.Equal(t, model.NewMeeting(model.DefaultConfig()), meeting)

	require.Len(t, db.sessions, 1)
	require.Equal(t, 4, db.sessions[0].Duration)
	require.Equal(t, "euro", db.sessions[0].Currency)
}

func TestMeetingModel_EndKeyIgnoredWhileRunning(t *testing.T) {
	m, db := newTestModel(t)

	m = startMeeting(t, m)
	m = press(t, m, runes("n"))

	require.Equal(t, model.StatusStarted, m.Meeting().Status)
	require.Empty(t, db.sessions)
}

func TestMeetingModel_ViewBranchesOnStatus(t *testing.T) {
	m, _ := newTestModel(t)

	form := m.View()
	require.Contains(t, form, "Start meeting")
	require.Contains(t, form, "Euro (€)")

	m = startMeeting(t, m)

	dashboard := m.View()
	require.Contains(t, dashboard, "Meeting in progress")
	require.Contains(t, dashboard, "00:00:00")
	require.NotContains(t, dashboard, "Start meeting")

	m = press(t, m, runes("p"))
	require.Contains(t, m.View(), "Meeting paused")
}

func TestMeetingModel_DashboardShowsFormattedCost(t *testing.T) {
	m, _ := newTestModel(t)

	m = startMeeting(t, m)

	// 10 attendees at 100/h for one hour is exactly 1 000,00.
	for range 3600 {
		m = press(t, m, tickMsg(time.Now()))
	}

	require.Contains(t, m.View(), "1 000,00€")
	require.Contains(t, m.View(), "01:00:00")
}

func TestMeetingModel_ControlsShownWithHelpDisabled(t *testing.T) {
	prefs := settings.Default()
	prefs.ShowHelp = false

	m, err := NewMeetingModel(newMemStore(), prefs)
	require.NoError(t, err)

	m = startMeeting(t, m)

	running := m.View()
	require.Contains(t, running, "p: pause")
	require.NotContains(t, running, "q: quit")

	m = press(t, m, runes("p"))

	paused := m.View()
	require.Contains(t, paused, "r: resume")
	require.Contains(t, paused, "n: new meeting")
	require.NotContains(t, paused, "q: quit")
}
