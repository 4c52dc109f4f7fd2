package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type RuleListCmd struct{}

func (c *RuleListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rules := settings.Notifications.Rules
	if len(rules) == 0 {
		fmt.Println("No notification rules configured.")
		return nil
	}

	// Show rules in the order the evaluator considers them
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})

	fmt.Printf("%-36s %-24s %-6s %-9s %-8s %-20s\n", "ID", "Name", "Type", "Priority", "Enabled", "Action")
	fmt.Println(strings.Repeat("-", 108))

	for _, rule := range rules {
		name := rule.Name
		if len(name) > 22 {
			name = name[:19] + "..."
		}

		enabled := "yes"
		if !rule.Enabled {
			enabled = "no"
		}

		action := "allow"
		switch {
		case rule.Actions.Mute:
			action = "mute"
		case rule.Actions.OverrideTemplate != "":
			action = "template=" + rule.Actions.OverrideTemplate
		case rule.Actions.OverrideSound != "":
			action = "sound=" + rule.Actions.OverrideSound
		case rule.Actions.CustomMessage != "":
			action = "message"
		}
		if len(action) > 18 {
			action = action[:15] + "..."
		}

		fmt.Printf("%-36s %-24s %-6s %-9d %-8s %-20s\n",
			rule.ID, name, rule.Conditions.Type, rule.Priority, enabled, action)
	}

	return nil
}
