package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitloop/internal/constants"
	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/habit"
	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/report"
	"github.com/julianstephens/habitloop/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits in sort order."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Toggle HabitToggleCmd `cmd:"" help:"Mark or unmark a habit for a day."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's habit status and progress."`
	Stats  HabitStatsCmd  `cmd:"" help:"Show streaks and monthly history for a habit."`
	Week   HabitWeekCmd   `cmd:"" help:"Show a habit's trailing week."`
	Sort   HabitSortCmd   `cmd:"" help:"Rewrite sort ranks to a dense 1..N sequence."`
}

type HabitAddCmd struct {
	Name   string   `arg:"" help:"Habit name."`
	Days   string   `help:"Weekdays, e.g. 'mon,wed,fri' or 'daily'." default:"daily"`
	Note   string   `help:"Motivational note, also used as reminder text." default:""`
	Remind []string `help:"Reminder times in HH:MM (repeatable)."`
	Color  string   `help:"Display tint (premium): rose, amber, emerald, sky, violet, slate." default:""`
	End    string   `help:"Optional end date in YYYY-MM-DD format." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	// Check if habit with same name already exists
	if _, err := ctx.Habits.FindByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	} else if !apperr.IsNotFound(err) {
		return err
	}

	freq, err := ParseFrequency(c.Days)
	if err != nil {
		return err
	}

	h := models.Habit{
		Name:          c.Name,
		Note:          c.Note,
		Frequency:     freq,
		StartAt:       time.Now().UnixMilli(),
		ReminderTimes: c.Remind,
	}

	if c.End != "" {
		end, err := utils.ParseDay(c.End)
		if err != nil {
			return err
		}
		endMs := utils.ToMillis(end)
		h.EndAt = &endMs
	}

	if c.Color != "" {
		if err := requirePremium(ctx, "color customization"); err != nil {
			return err
		}
		h.Color = constants.HabitColor(c.Color)
	}

	saved, err := ctx.Habits.Save(h)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", saved.Name, FormatFrequency(saved.Frequency))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Habits.LoadAll()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	habit.SortByOrder(habits)

	now := time.Now()
	for _, h := range habits {
		status := ""
		if !h.Active(now) {
			status = " [ENDED]"
		}
		fmt.Printf("%2d. %s (%s)%s\n", h.Order, Tint(h, h.Name), FormatFrequency(h.Frequency), status)
	}

	return nil
}

type HabitEditCmd struct {
	Name     string   `arg:"" help:"Habit name."`
	Rename   string   `help:"New name." default:""`
	Days     string   `help:"New weekdays, e.g. 'mon,wed,fri' or 'daily'." default:""`
	Note     string   `help:"New motivational note." default:""`
	Remind   []string `help:"New reminder times in HH:MM (replaces the previous set)."`
	Color    string   `help:"New display tint (premium)." default:""`
	End      string   `help:"New end date in YYYY-MM-DD format." default:""`
	NoEnd    bool     `help:"Clear the end date."`
	NoRemind bool     `help:"Clear all reminder times."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.FindByName(c.Name)
	if err != nil {
		return err
	}

	if c.Rename != "" {
		h.Name = c.Rename
	}
	if c.Note != "" {
		h.Note = c.Note
	}
	if c.Days != "" {
		freq, err := ParseFrequency(c.Days)
		if err != nil {
			return err
		}
		h.Frequency = freq
	}
	if c.NoRemind {
		h.ReminderTimes = nil
	} else if len(c.Remind) > 0 {
		h.ReminderTimes = c.Remind
	}
	if c.NoEnd {
		h.EndAt = nil
	} else if c.End != "" {
		end, err := utils.ParseDay(c.End)
		if err != nil {
			return err
		}
		endMs := utils.ToMillis(end)
		h.EndAt = &endMs
	}
	if c.Color != "" {
		if err := requirePremium(ctx, "color customization"); err != nil {
			return err
		}
		h.Color = constants.HabitColor(c.Color)
	}

	if _, err := ctx.Habits.Save(h); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", h.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.FindByName(c.Name)
	if err != nil {
		return err
	}

	if err := ctx.Habits.Delete(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.FindByName(c.Name)
	if err != nil {
		return err
	}

	day := time.Now()
	if c.Date != "" {
		day, err = utils.ParseDay(c.Date)
		if err != nil {
			return err
		}
	}

	if err := ctx.History.Toggle(h.ID, day); err != nil {
		return err
	}

	fmt.Printf("Toggled %s for %s\n", h.Name, utils.DayKey(day))
	return nil
}

type HabitTodayCmd struct{}

func (c *HabitTodayCmd) Run(ctx *Context) error {
	all, err := ctx.History.LoadAll()
	if err != nil {
		return err
	}

	now := time.Now()
	habits := make([]models.Habit, 0, len(all))
	histories := make(map[string][]time.Time, len(all))
	for _, hh := range all {
		habits = append(habits, hh.Habit)
		histories[hh.Habit.ID] = hh.Days
	}

	progress := report.ComputeDailyProgress(habits, histories, now)
	fmt.Printf("Today: %.0f%%\n", progress)

	habit.SortByOrder(habits)
	for _, h := range habits {
		if !h.Frequency.On(now.Weekday()) || !h.Active(now) {
			continue
		}
		mark := "[ ]"
		for _, d := range histories[h.ID] {
			if utils.SameDay(d, now) {
				mark = "[x]"
				break
			}
		}
		fmt.Printf("  %s %s\n", mark, Tint(h, h.Name))
	}

	return nil
}

type HabitStatsCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.FindByName(c.Name)
	if err != nil {
		return err
	}

	days, err := ctx.History.Load(h.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	score := report.ComputeHabitScore(h, days, now)
	fmt.Printf("%s\n", Tint(h, h.Name))
	fmt.Printf("  current streak: %d\n", score.Current)
	fmt.Printf("  best streak:    %d\n", score.Best)
	fmt.Printf("  completions:    %d\n", score.Total)

	histogram := report.ComputeHistoryByMonth(days, now)
	fmt.Println("  last 12 months:")
	for m := time.January; m <= time.December; m++ {
		fmt.Printf("    %s %d\n", m.String()[:3], histogram[int(m)-1])
	}

	return nil
}

type HabitWeekCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitWeekCmd) Run(ctx *Context) error {
	h, err := ctx.Habits.FindByName(c.Name)
	if err != nil {
		return err
	}

	week, err := ctx.History.LoadWeek(h.ID, time.Now())
	if err != nil {
		return err
	}

	if len(week) == 0 {
		fmt.Printf("%s: no completions in the last 7 days\n", h.Name)
		return nil
	}

	fmt.Printf("%s:\n", Tint(h, h.Name))
	for _, d := range week {
		fmt.Printf("  %s\n", utils.DayKey(d))
	}

	return nil
}

type HabitSortCmd struct{}

func (c *HabitSortCmd) Run(ctx *Context) error {
	if err := ctx.Habits.Resort(); err != nil {
		return err
	}
	fmt.Println("Rewrote sort order.")
	return nil
}

func requirePremium(ctx *Context, feature string) error {
	premium, err := ctx.Settings.IsPremium()
	if err != nil {
		return err
	}
	if !premium {
		return fmt.Errorf("%s requires premium", feature)
	}
	return nil
}
