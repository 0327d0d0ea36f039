package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/julianstephens/habitloop/internal/calendar"
	"github.com/julianstephens/habitloop/internal/utils"
)

// calendarPalette matches the accent colors the rendering layer uses for
// period bands.
var calendarPalette = calendar.Palette{
	Accent:       "#0ea5e9",
	Selected:     "#8b5cf6",
	Text:         "#ffffff",
	SelectedText: "#ffffff",
}

type CalendarCmd struct {
	Selected string `help:"Highlighted day in YYYY-MM-DD format (default: today)." default:""`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	all, err := ctx.History.LoadAll()
	if err != nil {
		return err
	}

	// Aggregate completions across every habit into one day list.
	var days []time.Time
	for _, hh := range all {
		days = append(days, hh.Days...)
	}
	utils.SortDays(days)

	selected := time.Now()
	if c.Selected != "" {
		selected, err = utils.ParseDay(c.Selected)
		if err != nil {
			return err
		}
	}

	markings, summary := calendar.BuildMarkings(days, &selected, calendarPalette)

	keys := make([]string, 0, len(markings))
	for key := range markings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		m := markings[key]
		band := ""
		if m.StartingDay {
			band += "start"
		}
		if m.EndingDay {
			if band != "" {
				band += "+"
			}
			band += "end"
		}
		fmt.Printf("%s  %-9s %s\n", key, band, m.Color)
	}

	fmt.Printf("streak: %d (best %d)\n", summary.Current, summary.Best)
	return nil
}

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *DayCmd) Run(ctx *Context) error {
	day := time.Now()
	if c.Date != "" {
		var err error
		day, err = utils.ParseDay(c.Date)
		if err != nil {
			return err
		}
	}

	habits, err := ctx.History.LoadByDay(day)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Printf("Nothing done on %s.\n", utils.DayKey(day))
		return nil
	}

	fmt.Printf("Done on %s:\n", utils.DayKey(day))
	for _, h := range habits {
		fmt.Printf("  %s\n", Tint(h, h.Name))
	}

	return nil
}
