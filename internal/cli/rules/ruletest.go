package rules

import (
	"fmt"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/notify"
)

// RuleTestCmd evaluates the current rule set against a real task or a
// synthetic timer event without scheduling anything.
type RuleTestCmd struct {
	Task     string `help:"Task id to evaluate the rules against." xor:"event"`
	Timer    bool   `help:"Evaluate against a synthetic timer event." xor:"event"`
	Duration int    `help:"Session duration in minutes for --timer." default:"25"`
	At       string `help:"Evaluate as if at this time (YYYY/MM/DD HH:MM). Defaults to now."`
}

func (c *RuleTestCmd) Run(ctx *cli.Context) error {
	if c.Task == "" && !c.Timer {
		return fmt.Errorf("must specify either --task or --timer")
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	now := time.Now()
	if c.At != "" {
		now, err = time.ParseInLocation("2006/01/02 15:04", c.At, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --at value (expected YYYY/MM/DD HH:MM): %w", err)
		}
	}

	var event notify.Event
	if c.Task != "" {
		task, err := ctx.Store.GetTask(c.Task)
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}
		event = notify.TaskEvent(&task)
	} else {
		session := models.TimerSession{
			Type:      models.SessionWork,
			StartTime: now,
			Duration:  c.Duration * 60,
		}
		event = notify.TimerEvent(&session)
	}

	decision := notify.Evaluate(settings.Notifications.Rules, event, now)

	if !decision.ShouldNotify {
		fmt.Println("Result: muted")
		return nil
	}

	fmt.Println("Result: notify")
	if decision.Template != "" {
		fmt.Printf("  template override: %s\n", decision.Template)
	}
	if decision.Sound != "" {
		fmt.Printf("  sound override:    %s\n", decision.Sound)
	}
	if decision.Message != "" {
		fmt.Printf("  message override:  %s\n", decision.Message)
	}
	return nil
}
