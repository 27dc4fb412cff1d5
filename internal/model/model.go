package model

import (
	"strconv"
	"strings"

	"github.com/inovacc/burnr/internal/currency"
	"github.com/inovacc/burnr/internal/stopwatch"
)

// Status is the lifecycle state of the current meeting.
type Status int

const (
	// StatusNew is the setup phase before the timer has started.
	StatusNew Status = iota

	// StatusStarted means the timer is running and cost is accruing.
	StatusStarted

	// StatusPaused means the timer is stopped but the meeting can resume.
	StatusPaused
)

// Meeting is the authoritative state of the meeting being tracked. It is a
// value type: every transition returns a new Meeting with exactly one field
// changed, leaving the previous value untouched.
type Meeting struct {
	// Attendees is the number of people in the meeting, never negative
	Attendees int `json:"attendees"`

	// HourlyRate is the billing rate per attendee per hour
	HourlyRate float64 `json:"hourly_rate"`

	// Duration is the elapsed meeting time in seconds
	Duration int `json:"duration"`

	// Description is free-form text describing the meeting
	Description string `json:"description"`

	// Status governs which view is shown and whether ticks advance Duration
	Status Status `json:"status"`

	// Currency selects the display currency for rate and cost
	Currency currency.Currency `json:"currency"`
}

// NewMeeting returns a fresh meeting in the setup phase, seeded from cfg.
func NewMeeting(cfg Config) Meeting {
	cur, err := currency.Parse(cfg.DefaultCurrency)
	if err != nil {
		cur = currency.Euro
	}

	return Meeting{
		Attendees:  cfg.DefaultAttendees,
		HourlyRate: cfg.DefaultHourlyRate,
		Status:     StatusNew,
		Currency:   cur,
	}
}

// WithDescription sets the meeting description. All input is accepted.
func (m Meeting) WithDescription(text string) Meeting {
	m.Description = text
	return m
}

// WithAttendees parses text as the attendee count. Unparseable or negative
// input yields 0 rather than an error so the form stays renderable.
func (m Meeting) WithAttendees(text string) Meeting {
	m.Attendees = parseIntOrZero(text)
	return m
}

// WithHourlyRate parses text as the hourly rate, with the same
// default-to-zero policy as WithAttendees.
func (m Meeting) WithHourlyRate(text string) Meeting {
	m.HourlyRate = parseFloatOrZero(text)
	return m
}

// WithCurrency switches the currency to the one named by text. An unknown
// name keeps the previous selection.
func (m Meeting) WithCurrency(name string) Meeting {
	cur, err := currency.Parse(name)
	if err != nil {
		return m
	}

	m.Currency = cur

	return m
}

// Tick advances the timer by one second while the meeting is started.
// Ticks arriving in any other state are ignored.
func (m Meeting) Tick() Meeting {
	if m.Status == StatusStarted {
		m.Duration++
	}

	return m
}

// Start begins or resumes the meeting. Valid from the setup and paused
// states; a no-op while already started.
func (m Meeting) Start() Meeting {
	m.Status = StatusStarted
	return m
}

// Pause freezes the timer. Only a started meeting can pause; anything else
// is a no-op.
func (m Meeting) Pause() Meeting {
	if m.Status == StatusStarted {
		m.Status = StatusPaused
	}

	return m
}

// Cost returns the accrued meeting cost so far.
func (m Meeting) Cost() float64 {
	return float64(m.Attendees) * m.HourlyRate * stopwatch.Hours(m.Duration)
}

func parseIntOrZero(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 {
		return 0
	}

	return n
}

func parseFloatOrZero(text string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || f < 0 {
		return 0
	}

	return f
}
