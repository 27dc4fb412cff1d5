package model

// Config holds the application configuration
type Config struct {
	// DefaultAttendees seeds the attendee count of a new meeting
	DefaultAttendees int `json:"default_attendees"`

	// DefaultHourlyRate seeds the hourly rate of a new meeting
	DefaultHourlyRate float64 `json:"default_hourly_rate"`

	// DefaultCurrency is the canonical identifier of the startup currency
	DefaultCurrency string `json:"default_currency"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		DefaultAttendees:  10,
		DefaultHourlyRate: 100,
		DefaultCurrency:   "euro",
	}
}
