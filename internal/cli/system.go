package cli

import (
	"fmt"
	"os"

	"github.com/julianstephens/habitloop/internal/constants"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing storage before initialization."`
}

func (c *InitCmd) Run(ctx *Context) error {
	// If force flag is provided, delete existing storage
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			// Storage exists, close it first to prevent file locking issues
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing storage: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing storage: %w", err)
			}
			fmt.Printf("Deleted existing storage at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized habitloop storage at: %s\n", ctx.Store.GetConfigPath())

	return nil
}

type DebugCmd struct {
	Dump DebugDumpCmd `cmd:"" help:"Dump raw stored collections." default:"1"`
}

type DebugDumpCmd struct{}

func (c *DebugDumpCmd) Run(ctx *Context) error {
	keys := []string{
		constants.KeyHabits,
		constants.KeyHistory,
		constants.KeySortOrder,
		constants.KeyUser,
		constants.KeyTheme,
	}

	for _, key := range keys {
		raw, ok, err := ctx.Store.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("%s: <absent>\n", key)
			continue
		}
		fmt.Printf("%s: %s\n", key, raw)
	}

	return nil
}
