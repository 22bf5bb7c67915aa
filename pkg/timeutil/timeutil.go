package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFormat is returned when a wall-clock string is not "HH:MM".
var ErrInvalidFormat = errors.New("invalid time format, expected HH:MM")

// ToMinutes parses a "HH:MM" wall-clock string into minutes since
// midnight. The format is strict: time.Parse alone would accept "9:30",
// so the length is checked first.
func ToMinutes(value string) (int, error) {
	if len(value) != 5 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, value)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// ToTimeString renders minutes since midnight as a zero-padded "HH:MM"
// string. Values outside a single day are rendered as-is (e.g. 1450 ->
// "24:10"), which only happens for actual completion times recorded past
// the day window.
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration renders a duration in minutes as "H.MM" for display,
// hours and minutes joined with a literal dot: 90 -> "1.30".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%d.%02d", minutes/60, minutes%60)
}
