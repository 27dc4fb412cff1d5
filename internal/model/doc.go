// Package model defines the data structures used throughout burnr.
//
// This package contains the core domain models that represent the
// application's data. The state machine driving the tracker lives here as
// pure value transitions on [Meeting]; the UI and storage layers consume
// these types without adding semantics of their own.
//
// # Meeting
//
// The [Meeting] struct is the single authoritative state of the meeting
// being tracked:
//
//	type Meeting struct {
//	    Attendees   int       // Number of people in the meeting
//	    HourlyRate  float64   // Billing rate per attendee per hour
//	    Duration    int       // Elapsed time in seconds
//	    Description string    // Free-form description
//	    Status      Status    // New, Started or Paused
//	    Currency    currency.Currency
//	}
//
// Transitions are value methods returning a new Meeting, so the current
// state can only be replaced wholesale, never mutated in place.
//
// # Session
//
// The [Session] struct is the immutable record of a finished meeting kept
// in the history store.
//
// # Config
//
// The [Config] struct holds the defaults a fresh meeting is seeded with.
package model
