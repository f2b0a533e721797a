// Package timeutil provides utility functions for working with countdown
// values and clock times.
package timeutil

const secondsInAMinute = 60

const (
	clock24Hour = "15:04"
	clock12Hour = "03:04 PM"
)

// MinsAndSecs expresses a total number of seconds in whole minutes and
// the remaining seconds. Negative totals are treated as zero.
func MinsAndSecs(total int) (mins, secs int) {
	if total < 0 {
		total = 0
	}

	mins = total / secondsInAMinute
	secs = total % secondsInAMinute

	return
}

// ClockLayout returns the time layout used to print wall clock times.
func ClockLayout(twentyFourHour bool) string {
	if twentyFourHour {
		return clock24Hour
	}

	return clock12Hour
}
