package domain

import (
	"fmt"
	"time"
)

// DateLayout is the text form dates take in the store.
const DateLayout = "2006-01-02"

// ParseDate parses a store-encoded calendar date ("YYYY-MM-DD").
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// FormatDate encodes a calendar date for the store.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeOfDay is a wall-clock time with minute precision. The store encodes
// it as "HH:MM"; comparisons operate on the typed value, never the text.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses a store-encoded time of day ("HH:MM").
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

// String encodes the time of day for the store.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// After reports whether t is strictly later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.minutes() > other.minutes()
}

// Before reports whether t is strictly earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes() < other.minutes()
}

func (t TimeOfDay) minutes() int {
	return t.Hour*60 + t.Minute
}
