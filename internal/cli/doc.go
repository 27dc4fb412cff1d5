// Package cli contains the Bubble Tea models that make up burnr's terminal
// interface.
//
// [MeetingModel] is the tracker itself: a single meeting state value driven
// by key presses and a 1-second tick, all delivered serially through Update.
// [ConfigureModel] edits the stored defaults and [SessionListModel] browses
// the recorded meeting history.
package cli
