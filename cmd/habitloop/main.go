package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habitloop/internal/cli"
	"github.com/julianstephens/habitloop/internal/constants"
	apperr "github.com/julianstephens/habitloop/internal/errors"
	"github.com/julianstephens/habitloop/internal/habit"
	"github.com/julianstephens/habitloop/internal/history"
	"github.com/julianstephens/habitloop/internal/logger"
	"github.com/julianstephens/habitloop/internal/notify"
	"github.com/julianstephens/habitloop/internal/settings"
	"github.com/julianstephens/habitloop/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .json extension selects the JSON store; anything else uses SQLite." env:"HABITLOOP_CONFIG" default:"~/.config/habitloop/habitloop.db"`
	Debug   bool   `help:"Enable debug logging." env:"HABITLOOP_DEBUG"`

	Init     cli.InitCmd     `cmd:"" help:"Initialize habitloop storage."`
	Habit    cli.HabitCmd    `cmd:"" help:"Manage habits and habit tracking."`
	Day      cli.DayCmd      `cmd:"" help:"Show what was done on a day."`
	Calendar cli.CalendarCmd `cmd:"" help:"Show calendar markings across all habits."`
	Settings cli.SettingsCmd `cmd:"" help:"Manage user settings and theme."`
	DebugCmd cli.DebugCmd    `cmd:"" name:"debug" hidden:"" help:"Debug commands for troubleshooting."`
}

func main() {
	// Best-effort: a missing .env file is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with streaks, calendar periods and reminders"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandPath(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	if strings.HasSuffix(configPath, ".json") {
		store = storage.NewJSONStore(configPath)
	} else {
		store = storage.NewSQLiteStore(configPath)
	}

	sched := resolveScheduler()
	reconciler := notify.NewReconciler(store, sched)
	historyRepo := history.NewRepo(store, reconciler)

	appCtx := &cli.Context{
		Store:     store,
		Habits:    habit.NewRepo(store, historyRepo, reconciler),
		History:   historyRepo,
		Settings:  settings.NewRepo(store),
		Scheduler: sched,
	}

	// Load the store before running the command (init handles its own setup)
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	apperr.Fatal(ctx.Run(appCtx))
}

// resolveScheduler prefers the local tray agent and degrades to the null
// scheduler when the agent is unreachable, so data operations never block on
// notification delivery.
func resolveScheduler() notify.Scheduler {
	agent := notify.NewAgentScheduler()
	if agent.Available() {
		return agent
	}
	logger.Debug("Notification agent unavailable, reminders will not be delivered")
	return notify.NewNullScheduler()
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
