package models

import (
	"time"

	"github.com/julianstephens/habitloop/internal/constants"
)

// Frequency holds one flag per weekday, keyed "sun".."sat". A valid
// frequency has exactly those seven keys.
type Frequency map[string]bool

// NewFrequency returns a frequency with all seven weekday keys set to v.
func NewFrequency(v bool) Frequency {
	f := make(Frequency, 7)
	for _, key := range constants.WeekdayKeys {
		f[key] = v
	}
	return f
}

// On reports whether the habit is scheduled for the given weekday.
func (f Frequency) On(wd time.Weekday) bool {
	return f[constants.WeekdayKeys[wd]]
}

// Days returns the number of scheduled weekdays.
func (f Frequency) Days() int {
	n := 0
	for _, key := range constants.WeekdayKeys {
		if f[key] {
			n++
		}
	}
	return n
}

// Habit represents a recurring practice to track.
//
// StartAt and EndAt are epoch milliseconds; EndAt, when set, marks the habit
// inactive once it has passed. Order is joined in from the sort-order
// collection on load and is not part of the stored habit record.
type Habit struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Note            string               `json:"note,omitempty"`
	Frequency       Frequency            `json:"frequency"`
	StartAt         int64                `json:"start_at"`
	EndAt           *int64               `json:"end_at,omitempty"`
	ReminderTimes   []string             `json:"reminder_times,omitempty"` // HH:MM
	Color           constants.HabitColor `json:"color,omitempty"`
	NotificationIDs []string             `json:"notification_ids,omitempty"`

	Order int `json:"-"`
}

// Active reports whether the habit has not yet ended at the given instant.
func (h Habit) Active(now time.Time) bool {
	if h.EndAt == nil {
		return true
	}
	return now.UnixMilli() < *h.EndAt
}
