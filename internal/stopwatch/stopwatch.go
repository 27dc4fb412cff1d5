// Package stopwatch converts elapsed seconds into display and billing units.
package stopwatch

import "fmt"

// Format renders an elapsed seconds count as a zero-padded "HH:MM:SS"
// stopwatch string. Every field wraps at 60, including hours.
func Format(seconds int) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600%60, seconds/60%60, seconds%60)
}

// Hours returns the elapsed time as fractional hours.
func Hours(seconds int) float64 {
	return float64(seconds) / 3600
}
