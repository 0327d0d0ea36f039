package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitloop/internal/constants"
	"github.com/julianstephens/habitloop/internal/habit"
	"github.com/julianstephens/habitloop/internal/history"
	"github.com/julianstephens/habitloop/internal/models"
	"github.com/julianstephens/habitloop/internal/notify"
	"github.com/julianstephens/habitloop/internal/settings"
	"github.com/julianstephens/habitloop/internal/storage"
)

type Context struct {
	Store     storage.Provider
	Habits    *habit.Repo
	History   *history.Repo
	Settings  *settings.Repo
	Scheduler notify.Scheduler
}

// ParseFrequency parses a comma-separated list of weekdays ("mon,wed,fri"),
// or the shorthand "daily", into a frequency map.
func ParseFrequency(s string) (models.Frequency, error) {
	if strings.EqualFold(strings.TrimSpace(s), "daily") {
		return models.NewFrequency(true), nil
	}

	freq := models.NewFrequency(false)
	known := make(map[string]bool, len(constants.WeekdayKeys))
	for _, key := range constants.WeekdayKeys {
		known[key] = true
	}

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if len(part) > 3 {
			part = part[:3]
		}
		if !known[part] {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		freq[part] = true
	}

	return freq, nil
}

// FormatFrequency formats a frequency map as a short human-readable string.
func FormatFrequency(f models.Frequency) string {
	if f.Days() == len(constants.WeekdayKeys) {
		return "daily"
	}

	var days []string
	for _, key := range constants.WeekdayKeys {
		if f[key] {
			days = append(days, key)
		}
	}
	if len(days) == 0 {
		return "never"
	}
	return strings.Join(days, ",")
}

var tintStyles = map[constants.HabitColor]lipgloss.Style{
	constants.ColorRose:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f43f5e")),
	constants.ColorAmber:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
	constants.ColorEmerald: lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
	constants.ColorSky:     lipgloss.NewStyle().Foreground(lipgloss.Color("#0ea5e9")),
	constants.ColorViolet:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8b5cf6")),
	constants.ColorSlate:   lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")),
}

// Tint renders text in the habit's display color, when it has one.
func Tint(h models.Habit, text string) string {
	if style, ok := tintStyles[h.Color]; ok {
		return style.Render(text)
	}
	return text
}
