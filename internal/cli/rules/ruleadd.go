package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

type RuleAddCmd struct {
	Name     string `arg:"" help:"Rule name."`
	Type     string `help:"Event type the rule applies to (timer|task)." required:""`
	Priority int    `help:"Evaluation priority, higher wins." default:"0"`
	Disabled bool   `help:"Create the rule disabled."`

	Categories string `help:"Comma-separated category ids the rule matches."`
	Priorities string `help:"Comma-separated task priorities (low,medium,high)."`
	Days       string `help:"Comma-separated weekdays (e.g. mon,wed,fri)."`
	From       string `help:"Time window start (HH:MM)."`
	To         string `help:"Time window end (HH:MM). A window past midnight wraps."`

	MinDuration *int `help:"Timer only: minimum session duration in seconds."`
	MaxDuration *int `help:"Timer only: maximum session duration in seconds."`
	MinUntil    *int `help:"Task only: minimum minutes until deadline."`
	MaxUntil    *int `help:"Task only: maximum minutes until deadline."`

	Mute     bool   `help:"Suppress matching notifications entirely."`
	Sound    string `help:"Override the notification sound."`
	Template string `help:"Override the notification template id."`
	Message  string `help:"Override the notification message."`
}

func (c *RuleAddCmd) Validate() error {
	if (c.From == "") != (c.To == "") {
		return fmt.Errorf("--from and --to must be specified together")
	}
	if c.From != "" {
		if !utils.ValidateTimeFormat(c.From) {
			return fmt.Errorf("invalid time window start %q (expected HH:MM)", c.From)
		}
		if !utils.ValidateTimeFormat(c.To) {
			return fmt.Errorf("invalid time window end %q (expected HH:MM)", c.To)
		}
	}
	return nil
}

func (c *RuleAddCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	rule := models.NotificationRule{
		ID:       uuid.New().String(),
		Name:     c.Name,
		Enabled:  !c.Disabled,
		Priority: c.Priority,
		Conditions: models.RuleConditions{
			Type:                 models.EventType(c.Type),
			MinDuration:          c.MinDuration,
			MaxDuration:          c.MaxDuration,
			MinTimeUntilDeadline: c.MinUntil,
			MaxTimeUntilDeadline: c.MaxUntil,
		},
		Actions: models.RuleActions{
			Mute:             c.Mute,
			OverrideSound:    c.Sound,
			OverrideTemplate: c.Template,
			CustomMessage:    c.Message,
		},
	}

	for _, id := range strings.Split(c.Categories, ",") {
		if id = strings.TrimSpace(id); id != "" {
			rule.Conditions.Categories = append(rule.Conditions.Categories, id)
		}
	}

	priorities, err := cli.ParsePriorities(c.Priorities)
	if err != nil {
		return err
	}
	rule.Conditions.Priorities = priorities

	days, err := cli.ParseDays(c.Days)
	if err != nil {
		return err
	}
	rule.Conditions.Days = days

	if c.From != "" {
		rule.Conditions.TimeRange = &models.TimeRange{Start: c.From, End: c.To}
	}

	if err := rule.Validate(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings.Notifications.Rules = append(settings.Notifications.Rules, rule)
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save rule: %w", err)
	}

	fmt.Printf("✓ Rule added: %s (%s, priority %d)\n", rule.Name, rule.Conditions.Type, rule.Priority)
	return nil
}
