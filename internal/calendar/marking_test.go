package calendar

import (
	"testing"
	"time"
)

var testPalette = Palette{
	Accent:       "accent",
	Selected:     "selected",
	Text:         "text",
	SelectedText: "selected-text",
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 10, 0, 0, 0, time.Local)
}

func TestBuildMarkings_GapBreaksContiguity(t *testing.T) {
	days := []time.Time{
		day(2024, time.January, 1),
		day(2024, time.January, 2),
		day(2024, time.January, 3),
		day(2024, time.January, 5),
	}

	markings, summary := BuildMarkings(days, nil, testPalette)

	first := markings["2024-01-01"]
	if !first.StartingDay || first.EndingDay {
		t.Errorf("expected 01-01 to start but not end a band, got %+v", first)
	}

	middle := markings["2024-01-02"]
	if middle.StartingDay || middle.EndingDay {
		t.Errorf("expected 01-02 to be interior, got %+v", middle)
	}

	end := markings["2024-01-03"]
	if end.StartingDay || !end.EndingDay {
		t.Errorf("expected 01-03 to end the band (gap at 01-04), got %+v", end)
	}

	lone := markings["2024-01-05"]
	if !lone.StartingDay || !lone.EndingDay {
		t.Errorf("expected 01-05 to be its own starting+ending day, got %+v", lone)
	}

	if summary.Best != 3 {
		t.Errorf("expected best raw streak 3, got %d", summary.Best)
	}
	if summary.Current != 1 {
		t.Errorf("expected current raw streak 1 (the lone 01-05), got %d", summary.Current)
	}
}

func TestBuildMarkings_SelectedDayTint(t *testing.T) {
	days := []time.Time{
		day(2024, time.January, 1),
		day(2024, time.January, 2),
	}
	selected := day(2024, time.January, 2)

	markings, _ := BuildMarkings(days, &selected, testPalette)

	if markings["2024-01-01"].Color != "accent" {
		t.Errorf("expected unselected day in accent color, got %q", markings["2024-01-01"].Color)
	}
	got := markings["2024-01-02"]
	if got.Color != "selected" || got.TextColor != "selected-text" {
		t.Errorf("expected selected day tinted, got %+v", got)
	}
}

func TestBuildMarkings_SynthesizesSelectedDayWithoutCompletions(t *testing.T) {
	days := []time.Time{day(2024, time.January, 1)}
	selected := day(2024, time.January, 10)

	markings, _ := BuildMarkings(days, &selected, testPalette)

	got, ok := markings["2024-01-10"]
	if !ok {
		t.Fatal("expected a synthesized marking for the selected day")
	}
	if !got.StartingDay || !got.EndingDay || got.Color != "selected" {
		t.Errorf("expected standalone selected marking, got %+v", got)
	}
}

func TestBuildMarkings_DuplicateSameDayTimestampsCollapse(t *testing.T) {
	days := []time.Time{
		day(2024, time.January, 1),
		time.Date(2024, time.January, 1, 22, 0, 0, 0, time.Local),
		day(2024, time.January, 2),
	}

	markings, summary := BuildMarkings(days, nil, testPalette)

	if len(markings) != 2 {
		t.Errorf("expected 2 markings for 2 distinct days, got %d", len(markings))
	}
	if summary.Best != 2 || summary.Current != 2 {
		t.Errorf("expected raw streak 2, got %+v", summary)
	}
}

func TestBuildMarkings_RawStreakIgnoresSchedule(t *testing.T) {
	// Unlike the report engine, weekday gaps always break the aggregate
	// streak.
	days := []time.Time{
		day(2024, time.June, 3), // Mon
		day(2024, time.June, 5), // Wed
		day(2024, time.June, 7), // Fri
	}

	_, summary := BuildMarkings(days, nil, testPalette)

	if summary.Best != 1 || summary.Current != 1 {
		t.Errorf("expected raw consecutive streaks of 1, got %+v", summary)
	}
}

func TestBuildMarkings_Empty(t *testing.T) {
	markings, summary := BuildMarkings(nil, nil, testPalette)
	if len(markings) != 0 {
		t.Errorf("expected no markings, got %d", len(markings))
	}
	if summary.Current != 0 || summary.Best != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}
