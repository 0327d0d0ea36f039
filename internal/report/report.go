// Package report derives statistics from habit frequency rules and
// completion history. Everything here is pure computation over inputs the
// repositories load.
//
// Note there are two streak definitions in this codebase: the
// frequency-aware per-habit streak computed here by ComputeSequence, and the
// raw consecutive-day aggregate streak computed by the calendar package.
// They are intentionally separate algorithms; unifying them would silently
// change displayed statistics.
package report

import (
	"time"

	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/utils"
)

// Sequence holds the per-habit streak pair.
type Sequence struct {
	Current int
	Best    int
}

// Score composes the streak pair with the total completion count.
type Score struct {
	Sequence
	Total int
}

// ComputeDailyProgress returns the percentage of today's scheduled habits
// that have been completed today, across all habits. A habit qualifies when
// its frequency flag for today's weekday is set and it has not ended. With
// no qualifying habits, progress is 0. The result is an unrounded percentage.
func ComputeDailyProgress(habits []models.Habit, histories map[string][]time.Time, now time.Time) float64 {
	qualifying := 0
	matched := 0

	for _, h := range habits {
		if !h.Frequency.On(now.Weekday()) || !h.Active(now) {
			continue
		}
		qualifying++

		for _, d := range histories[h.ID] {
			if utils.SameDay(d, now) {
				matched++
				break
			}
		}
	}

	if qualifying == 0 {
		return 0
	}
	return float64(matched) * 100 / float64(qualifying)
}

// ComputeSequence computes the habit's current and best streak under the
// frequency-aware policy.
//
// The full day range from the earliest completion through now is walked in
// order. A day extends the current streak when it is completed, or when an
// already-running streak hits a weekday the habit is not scheduled for (an
// off day is silently skipped, not a break). Any other day resets the
// current streak. An off day never starts a streak from zero.
func ComputeSequence(h models.Habit, days []time.Time, now time.Time) Sequence {
	if len(days) == 0 {
		return Sequence{}
	}

	done := make(map[string]bool, len(days))
	earliest := days[0]
	for _, d := range days {
		done[utils.DayKey(d)] = true
		if d.Before(earliest) {
			earliest = d
		}
	}

	var seq Sequence
	end := utils.StartOfDay(now)
	for day := utils.StartOfDay(earliest); !day.After(end); day = day.AddDate(0, 0, 1) {
		switch {
		case done[utils.DayKey(day)]:
			seq.Current++
		case seq.Current > 0 && !h.Frequency.On(day.Weekday()):
			// off day inside a running streak: skip, don't break
		default:
			seq.Current = 0
		}
		if seq.Current > seq.Best {
			seq.Best = seq.Current
		}
	}

	return seq
}

// ComputeHistoryByMonth buckets the trailing 12 calendar months of history
// into a histogram indexed by calendar month, 0 = January. Months are
// counted irrespective of year; the window simply starts at the first day of
// the month 11 months back.
func ComputeHistoryByMonth(days []time.Time, now time.Time) [12]int {
	var histogram [12]int

	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)
	for _, d := range days {
		if d.Before(windowStart) {
			continue
		}
		histogram[int(d.Month())-1]++
	}

	return histogram
}

// ComputeHabitScore composes the habit's streaks with its total completion
// count.
func ComputeHabitScore(h models.Habit, days []time.Time, now time.Time) Score {
	return Score{
		Sequence: ComputeSequence(h, days, now),
		Total:    len(days),
	}
}
