package cli

import (
	"fmt"
)

type SettingsCmd struct {
	Show    SettingsShowCmd    `cmd:"" help:"Show current settings." default:"1"`
	Name    SettingsNameCmd    `cmd:"" help:"Set the display name."`
	Premium SettingsPremiumCmd `cmd:"" help:"Set the premium entitlement flag."`
	Theme   SettingsThemeCmd   `cmd:"" help:"Set the active theme (premium)."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *Context) error {
	user, err := ctx.Settings.GetUser()
	if err != nil {
		return err
	}
	theme, err := ctx.Settings.GetTheme()
	if err != nil {
		return err
	}

	fmt.Printf("name:    %s\n", user.Name)
	fmt.Printf("premium: %t\n", user.Premium)
	fmt.Printf("theme:   %s\n", theme.ID)
	return nil
}

type SettingsNameCmd struct {
	Name string `arg:"" help:"Display name."`
}

func (c *SettingsNameCmd) Run(ctx *Context) error {
	user, err := ctx.Settings.GetUser()
	if err != nil {
		return err
	}
	user.Name = c.Name
	if err := ctx.Settings.SaveUser(user); err != nil {
		return err
	}
	fmt.Printf("Set name to %s\n", c.Name)
	return nil
}

type SettingsPremiumCmd struct {
	Enabled bool `arg:"" help:"true or false."`
}

func (c *SettingsPremiumCmd) Run(ctx *Context) error {
	user, err := ctx.Settings.GetUser()
	if err != nil {
		return err
	}
	user.Premium = c.Enabled
	if err := ctx.Settings.SaveUser(user); err != nil {
		return err
	}
	fmt.Printf("Set premium to %t\n", c.Enabled)
	return nil
}

type SettingsThemeCmd struct {
	ID string `arg:"" help:"Theme identifier."`
}

func (c *SettingsThemeCmd) Run(ctx *Context) error {
	if err := ctx.Settings.SetTheme(c.ID); err != nil {
		return err
	}
	fmt.Printf("Set theme to %s\n", c.ID)
	return nil
}
