package settings

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Theme             *string `help:"UI theme (dark|light)."`
	ShowNotifications *bool   `help:"Enable or disable notifications globally."`
	DefaultDuration   *int    `help:"Default timer duration in minutes."`

	Sound  *string `help:"Global notification sound."`
	Volume *int    `help:"Notification volume (0-100)."`

	TimerBeforeEnd        *bool `help:"Notify before a session ends."`
	TimerBeforeEndMinutes *int  `help:"Minutes before session end to notify."`
	TimerOnComplete       *bool `help:"Notify when a session completes."`

	TaskBeforeDeadline        *bool `help:"Notify before a task deadline."`
	TaskBeforeDeadlineMinutes *int  `help:"Minutes before a deadline to notify."`
	TaskOnDeadline            *bool `help:"Notify at the task deadline."`
	TaskRecurring             *bool `help:"Notify for future recurring occurrences."`

	QuietHours      *bool   `help:"Enable or disable quiet hours."`
	QuietHoursStart *string `help:"Quiet hours start (HH:MM)."`
	QuietHoursEnd   *string `help:"Quiet hours end (HH:MM)."`
}

func (c *SettingsCmd) Validate() error {
	if c.Volume != nil && (*c.Volume < 0 || *c.Volume > 100) {
		return fmt.Errorf("volume must be between 0 and 100")
	}
	if c.QuietHoursStart != nil && !utils.ValidateTimeFormat(*c.QuietHoursStart) {
		return fmt.Errorf("invalid quiet hours start %q (expected HH:MM)", *c.QuietHoursStart)
	}
	if c.QuietHoursEnd != nil && !utils.ValidateTimeFormat(*c.QuietHoursEnd) {
		return fmt.Errorf("invalid quiet hours end %q (expected HH:MM)", *c.QuietHoursEnd)
	}
	return nil
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		n := settings.Notifications
		fmt.Println("Current Settings:")
		fmt.Printf("  Theme:                  %s\n", settings.Theme)
		fmt.Printf("  Show Notifications:     %v\n", settings.ShowNotifications)
		fmt.Printf("  Default Duration:       %d min\n", settings.DefaultTimerDuration/60)
		fmt.Println("\nNotification Settings:")
		fmt.Printf("  Sound:                  %s\n", n.Sound)
		fmt.Printf("  Volume:                 %d\n", n.Volume)
		fmt.Printf("  Timer Before End:       %v (%d min)\n", n.TimerNotifications.BeforeEnd, n.TimerNotifications.BeforeEndMinutes)
		fmt.Printf("  Timer On Complete:      %v\n", n.TimerNotifications.OnComplete)
		fmt.Printf("  Task Before Deadline:   %v (%d min)\n", n.TaskNotifications.BeforeDeadline, n.TaskNotifications.BeforeDeadlineMinutes)
		fmt.Printf("  Task On Deadline:       %v\n", n.TaskNotifications.OnDeadline)
		fmt.Printf("  Recurring Tasks:        %v\n", n.TaskNotifications.RecurringTasks)
		fmt.Printf("  Quiet Hours:            %v (%s - %s)\n", n.QuietHours.Enabled, n.QuietHours.Start, n.QuietHours.End)
		fmt.Printf("  Rules:                  %d\n", len(n.Rules))
		fmt.Printf("  Templates:              %d\n", len(n.Templates))
		return nil
	}

	updated := false
	if c.Theme != nil {
		settings.Theme = *c.Theme
		updated = true
	}
	if c.ShowNotifications != nil {
		settings.ShowNotifications = *c.ShowNotifications
		updated = true
	}
	if c.DefaultDuration != nil {
		settings.DefaultTimerDuration = *c.DefaultDuration * 60
		updated = true
	}
	if c.Sound != nil {
		settings.Notifications.Sound = *c.Sound
		updated = true
	}
	if c.Volume != nil {
		settings.Notifications.Volume = *c.Volume
		updated = true
	}
	if c.TimerBeforeEnd != nil {
		settings.Notifications.TimerNotifications.BeforeEnd = *c.TimerBeforeEnd
		updated = true
	}
	if c.TimerBeforeEndMinutes != nil {
		settings.Notifications.TimerNotifications.BeforeEndMinutes = *c.TimerBeforeEndMinutes
		updated = true
	}
	if c.TimerOnComplete != nil {
		settings.Notifications.TimerNotifications.OnComplete = *c.TimerOnComplete
		updated = true
	}
	if c.TaskBeforeDeadline != nil {
		settings.Notifications.TaskNotifications.BeforeDeadline = *c.TaskBeforeDeadline
		updated = true
	}
	if c.TaskBeforeDeadlineMinutes != nil {
		settings.Notifications.TaskNotifications.BeforeDeadlineMinutes = *c.TaskBeforeDeadlineMinutes
		updated = true
	}
	if c.TaskOnDeadline != nil {
		settings.Notifications.TaskNotifications.OnDeadline = *c.TaskOnDeadline
		updated = true
	}
	if c.TaskRecurring != nil {
		settings.Notifications.TaskNotifications.RecurringTasks = *c.TaskRecurring
		updated = true
	}
	if c.QuietHours != nil {
		settings.Notifications.QuietHours.Enabled = *c.QuietHours
		updated = true
	}
	if c.QuietHoursStart != nil {
		settings.Notifications.QuietHours.Start = *c.QuietHoursStart
		updated = true
	}
	if c.QuietHoursEnd != nil {
		settings.Notifications.QuietHours.End = *c.QuietHoursEnd
		updated = true
	}

	if updated {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Println("Settings updated successfully.")
	} else {
		fmt.Println("No changes specified. Use --list to view settings or flags to update them.")
	}

	return nil
}
