package rules

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type RuleDeleteCmd struct {
	ID string `arg:"" help:"Rule id to delete."`
}

func (c *RuleDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rules := settings.Notifications.Rules
	for i, rule := range rules {
		if rule.ID == c.ID {
			settings.Notifications.Rules = append(rules[:i], rules[i+1:]...)
			if err := ctx.Store.SaveSettings(settings); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Printf("✓ Rule deleted: %s\n", rule.Name)
			return nil
		}
	}

	return fmt.Errorf("rule not found: %s", c.ID)
}
