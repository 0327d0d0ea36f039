package constants

import "time"

// HabitColor represents one of the fixed habit display tints
type HabitColor string

const (
	AppName           = "habitloop"
	DefaultConfigPath = "~/.config/habitloop/habitloop.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time-of-day format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage collection keys. Each key holds one JSON blob.
	KeyHabits    = "habits"
	KeyHistory   = "history"
	KeySortOrder = "sort_order"
	KeyUser      = "user"
	KeyTheme     = "theme"

	// DefaultReminderBody is the notification body used when a habit has no note.
	DefaultReminderBody = "Time to work on your habit!"

	// Notification agent constants
	AgentLockfileName      = "habitloop-agent.lock"
	AgentAppIdentifier     = "com.julianstephens.habitloop"
	NotificationDurationMs = 5000

	// Habit color tints
	ColorRose    HabitColor = "rose"
	ColorAmber   HabitColor = "amber"
	ColorEmerald HabitColor = "emerald"
	ColorSky     HabitColor = "sky"
	ColorViolet  HabitColor = "violet"
	ColorSlate   HabitColor = "slate"

	// DefaultTheme is the theme id used until the user picks one.
	DefaultTheme = "system"
)

// HabitColors lists the selectable tints in display order.
var HabitColors = []HabitColor{ColorRose, ColorAmber, ColorEmerald, ColorSky, ColorViolet, ColorSlate}

// WeekdayKeys maps time.Weekday (0=Sunday) to the frequency map keys.
var WeekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// WeekdayIndex returns the 1-based scheduler weekday (1=Sunday..7=Saturday).
// The notification agent uses this numbering; it must stay in lockstep with
// the frequency keys above.
func WeekdayIndex(wd time.Weekday) int {
	return int(wd) + 1
}
