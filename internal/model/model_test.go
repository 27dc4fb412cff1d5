package model

import (
	"testing"

	"github.com/inovacc/burnr/internal/currency"
)

func TestNewMeeting_Defaults(t *testing.T) {
	m := NewMeeting(DefaultConfig())

	if m.Attendees != 10 {
		t.Errorf("Attendees = %d, want 10", m.Attendees)
	}

	if m.HourlyRate != 100 {
		t.Errorf("HourlyRate = %v, want 100", m.HourlyRate)
	}

	if m.Duration != 0 {
		t.Errorf("Duration = %d, want 0", m.Duration)
	}

	if m.Description != "" {
		t.Errorf("Description = %q, want empty", m.Description)
	}

	if m.Status != StatusNew {
		t.Errorf("Status = %v, want StatusNew", m.Status)
	}

	if m.Currency != currency.Euro {
		t.Errorf("Currency = %v, want Euro", m.Currency)
	}
}

func TestNewMeeting_UnknownConfiguredCurrencyFallsBackToEuro(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultCurrency = "doubloons"

	if m := NewMeeting(cfg); m.Currency != currency.Euro {
		t.Errorf("Currency = %v, want Euro", m.Currency)
	}
}

func TestWithAttendees(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain number", input: "25", want: 25},
		{name: "surrounding whitespace", input: " 7 ", want: 7},
		{name: "empty", input: "", want: 0},
		{name: "non-numeric", input: "abc", want: 0},
		{name: "float rejected", input: "3.5", want: 0},
		{name: "negative clamps to zero", input: "-5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeeting(DefaultConfig()).WithAttendees(tt.input)
			if m.Attendees != tt.want {
				t.Errorf("WithAttendees(%q).Attendees = %d, want %d", tt.input, m.Attendees, tt.want)
			}
		})
	}
}

func TestWithHourlyRate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "integer", input: "150", want: 150},
		{name: "decimal", input: "99.5", want: 99.5},
		{name: "empty", input: "", want: 0},
		{name: "non-numeric", input: "free", want: 0},
		{name: "negative clamps to zero", input: "-10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMeeting(DefaultConfig()).WithHourlyRate(tt.input)
			if m.HourlyRate != tt.want {
				t.Errorf("WithHourlyRate(%q).HourlyRate = %v, want %v", tt.input, m.HourlyRate, tt.want)
			}
		})
	}
}

func TestWithCurrency_UnknownKeepsPrevious(t *testing.T) {
	m := NewMeeting(DefaultConfig()).WithCurrency("swedishkrona")
	if m.Currency != currency.SwedishKrona {
		t.Fatalf("Currency = %v, want SwedishKrona", m.Currency)
	}

	m = m.WithCurrency("yen")
	if m.Currency != currency.SwedishKrona {
		t.Errorf("Currency after unknown name = %v, want SwedishKrona", m.Currency)
	}
}

func TestTick_OnlyAdvancesWhileStarted(t *testing.T) {
	m := NewMeeting(DefaultConfig())

	// Setup phase: ticks are ignored.
	if m = m.Tick(); m.Duration != 0 {
		t.Fatalf("Duration after tick in setup = %d, want 0", m.Duration)
	}

	m = m.Start()
	for range 3 {
		m = m.Tick()
	}

	if m.Duration != 3 {
		t.Fatalf("Duration after 3 ticks = %d, want 3", m.Duration)
	}

	// Paused: frozen.
	m = m.Pause()
	if m = m.Tick(); m.Duration != 3 {
		t.Errorf("Duration after tick while paused = %d, want 3", m.Duration)
	}
}

func TestPause_NoOpUnlessStarted(t *testing.T) {
	m := NewMeeting(DefaultConfig())

	if got := m.Pause(); got.Status != StatusNew {
		t.Errorf("Pause from setup: Status = %v, want StatusNew", got.Status)
	}

	paused := m.Start().Pause()
	if paused.Status != StatusPaused {
		t.Fatalf("Pause from started: Status = %v, want StatusPaused", paused.Status)
	}

	if got := paused.Pause(); got.Status != StatusPaused {
		t.Errorf("Pause from paused: Status = %v, want StatusPaused", got.Status)
	}
}

func TestCost(t *testing.T) {
	m := Meeting{Attendees: 10, HourlyRate: 100, Duration: 3600}

	if got := m.Cost(); got != 1000 {
		t.Errorf("Cost() = %v, want 1000", got)
	}
}

func TestMeetingLifecycle_RoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	m := NewMeeting(cfg)

	m = m.Start()
	if m.Status != StatusStarted {
		t.Fatalf("Status = %v, want StatusStarted", m.Status)
	}

	for range 5 {
		m = m.Tick()
	}

	if m.Duration != 5 {
		t.Fatalf("Duration = %d, want 5", m.Duration)
	}

	m = m.Pause()
	if m.Status != StatusPaused || m.Duration != 5 {
		t.Fatalf("after pause: Status = %v Duration = %d, want StatusPaused 5", m.Status, m.Duration)
	}

	// Resume and pause again, then end: a fresh meeting equals the defaults
	// exactly.
	m = m.Start().Pause()

	if got, want := NewMeeting(cfg), NewMeeting(cfg); got != want {
		t.Fatalf("fresh meetings differ: %+v vs %+v", got, want)
	}

	fresh := NewMeeting(cfg)
	if fresh.Status != StatusNew || fresh.Duration != 0 {
		t.Errorf("reset meeting = %+v, want default setup state", fresh)
	}
}
