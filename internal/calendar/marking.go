// Package calendar maps completion days onto calendar-period descriptors for
// rendering contiguous visual bands. Its aggregate streak counters use the
// raw consecutive-day policy, distinct on purpose from the frequency-aware
// per-habit streaks in the report package.
package calendar

import (
	"time"

	"github.com/julianstephens/habitloop/internal/utils"
)

// Marking describes how one calendar day is drawn inside a period band.
type Marking struct {
	StartingDay bool   `json:"startingDay"`
	EndingDay   bool   `json:"endingDay"`
	Color       string `json:"color"`
	TextColor   string `json:"textColor"`
}

// Palette supplies the colors used for period bands.
type Palette struct {
	Accent       string
	Selected     string
	Text         string
	SelectedText string
}

// Summary carries the aggregate raw-consecutive-day streak counters
// accumulated while deriving markings.
type Summary struct {
	Current int
	Best    int
}

// BuildMarkings derives, for each completion day, whether it starts and/or
// ends a contiguous band, keyed by the day's YYYY-MM-DD string. days must be
// sorted ascending; duplicate same-day timestamps collapse into one marking.
//
// A day starts a band when its predecessor day has no completion, and ends
// one when its successor day has none. The selected day, when supplied, is
// tinted with the selected color; if it has no completions at all, a
// standalone single-day marking is synthesized for it so the UI always has a
// highlight.
func BuildMarkings(days []time.Time, selected *time.Time, pal Palette) (map[string]Marking, Summary) {
	markings := make(map[string]Marking, len(days))
	present := make(map[string]bool, len(days))
	for _, d := range days {
		present[utils.DayKey(d)] = true
	}

	var selectedKey string
	if selected != nil {
		selectedKey = utils.DayKey(*selected)
	}

	var sum Summary
	var prev time.Time
	for i, d := range days {
		key := utils.DayKey(d)
		if _, done := markings[key]; done {
			continue
		}

		day := utils.StartOfDay(d)
		before := utils.DayKey(day.AddDate(0, 0, -1))
		after := utils.DayKey(day.AddDate(0, 0, 1))

		m := Marking{
			StartingDay: i == 0 || !present[before],
			EndingDay:   i == len(days)-1 || !present[after],
			Color:       pal.Accent,
			TextColor:   pal.Text,
		}
		if key == selectedKey {
			m.Color = pal.Selected
			m.TextColor = pal.SelectedText
		}
		markings[key] = m

		// Aggregate raw streak: strictly consecutive calendar days, no
		// skip rule for unscheduled weekdays.
		if !prev.IsZero() && utils.SameDay(day.AddDate(0, 0, -1), prev) {
			sum.Current++
		} else {
			sum.Current = 1
		}
		if sum.Current > sum.Best {
			sum.Best = sum.Current
		}
		prev = day
	}

	if selectedKey != "" {
		if _, ok := markings[selectedKey]; !ok {
			markings[selectedKey] = Marking{
				StartingDay: true,
				EndingDay:   true,
				Color:       pal.Selected,
				TextColor:   pal.SelectedText,
			}
		}
	}

	return markings, sum
}
