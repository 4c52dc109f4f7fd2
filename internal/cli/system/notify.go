package system

import (
	"fmt"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/notifier"
	"github.com/flowdeck-app/flowdeck/internal/notify"
	"github.com/flowdeck-app/flowdeck/internal/sched"
)

type NotifyCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of sending them."`
}

// Run fires task notifications that are due within the next minute. Meant
// to be invoked every minute by the tray app or a cron entry; longer-lived
// processes (the TUI) arm deferred handles instead.
func (c *NotifyCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !settings.ShowNotifications {
		if c.DryRun {
			fmt.Println("Notifications are disabled in settings.")
		}
		return nil
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	var display sched.Display = notifier.New()
	var sounds sched.SoundPlayer = notifier.New()
	if c.DryRun {
		console := notifier.NewConsole()
		display, sounds = console, console
	}

	now := time.Now()
	for _, task := range tasks {
		if task.IsCompleted {
			continue
		}

		plan := sched.PlanTask(&task, settings.Notifications, now)
		for _, entry := range plan.Entries {
			if entry.Delay >= time.Minute {
				continue
			}

			rendered := notify.Render(plan.Template, entry.Vars)
			if err := display.Show(rendered.Title, rendered.Body, rendered.Actions); err != nil {
				// Keep going; one failed delivery should not block the rest
				fmt.Printf("Failed to send notification: %v\n", err)
				continue
			}
			if plan.Sound != "" {
				if err := sounds.Play(plan.Sound, settings.Notifications.Volume); err != nil {
					fmt.Printf("Failed to play sound: %v\n", err)
				}
			}
		}
	}

	return nil
}
