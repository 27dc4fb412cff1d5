package model

import (
	"time"

	"github.com/inovacc/burnr/internal/currency"
)

// Session is the immutable record of a finished meeting, written once when
// the meeting is ended.
type Session struct {
	// UID is the unique identifier for the session
	UID string `json:"uid"`

	// Description is the meeting description at the time it ended
	Description string `json:"description"`

	// Attendees is the attendee count the cost was billed for
	Attendees int `json:"attendees"`

	// HourlyRate is the rate per attendee per hour
	HourlyRate float64 `json:"hourly_rate"`

	// Currency is the canonical identifier of the billing currency
	Currency string `json:"currency"`

	// Duration is the total meeting time in seconds
	Duration int `json:"duration"`

	// Cost is the final accrued cost
	Cost float64 `json:"cost"`

	// StartedAt is when the meeting timer first started
	StartedAt time.Time `json:"started_at"`

	// EndedAt is when the meeting was ended
	EndedAt time.Time `json:"ended_at"`
}

// NewSession snapshots a meeting into a session record.
func NewSession(m Meeting, startedAt, endedAt time.Time) Session {
	return Session{
		Description: m.Description,
		Attendees:   m.Attendees,
		HourlyRate:  m.HourlyRate,
		Currency:    m.Currency.String(),
		Duration:    m.Duration,
		Cost:        m.Cost(),
		StartedAt:   startedAt,
		EndedAt:     endedAt,
	}
}

// ParsedCurrency returns the session currency, falling back to Euro when the
// stored identifier is unreadable.
func (s Session) ParsedCurrency() currency.Currency {
	cur, err := currency.Parse(s.Currency)
	if err != nil {
		return currency.Euro
	}

	return cur
}
