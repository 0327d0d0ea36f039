package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/habitloop/internal/constants"
)

// DayKey normalizes a time to its local calendar-day string (YYYY-MM-DD).
// All day-granularity comparisons go through this so that two timestamps on
// the same local date are the same entry, regardless of time of day.
func DayKey(t time.Time) string {
	return t.Local().Format(constants.DateFormat)
}

// SameDay reports whether two timestamps fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// StartOfDay returns midnight of t's local calendar day.
func StartOfDay(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FromMillis converts stored epoch milliseconds to a local time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).Local()
}

// ToMillis converts a time to epoch milliseconds for storage.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// MillisToDays converts a slice of stored epoch-ms timestamps to times,
// sorted ascending by day. Storage order is unspecified, so consumers sort
// on read.
func MillisToDays(ms []int64) []time.Time {
	days := make([]time.Time, 0, len(ms))
	for _, m := range ms {
		days = append(days, FromMillis(m))
	}
	SortDays(days)
	return days
}

// SortDays sorts times ascending in place.
func SortDays(days []time.Time) {
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
}

// ParseDay parses a YYYY-MM-DD date string as local midnight.
func ParseDay(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(constants.DateFormat, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// ParseClock parses an HH:MM time-of-day string into hour and minute.
func ParseClock(timeStr string) (hour, minute int, err error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time format: %s (expected HH:MM)", timeStr)
	}
	return t.Hour(), t.Minute(), nil
}

// ValidClock reports whether the string matches the HH:MM format.
func ValidClock(timeStr string) bool {
	_, _, err := ParseClock(timeStr)
	return err == nil
}
