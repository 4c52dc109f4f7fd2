package tasks

import (
	"fmt"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

type TaskEditCmd struct {
	ID          string `arg:"" help:"Task id to edit."`
	Title       string `help:"New title."`
	Date        string `help:"New deadline date (YYYY-MM-DD)."`
	Time        string `help:"New deadline time (HH:MM)."`
	Description string `help:"New description."`
	Category    string `help:"New category id."`
	Priority    string `help:"New priority band (low|medium|high)."`
	Complete    bool   `help:"Mark the task completed."`
	Reopen      bool   `help:"Mark the task pending again."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Complete && c.Reopen {
		return fmt.Errorf("cannot specify both --complete and --reopen")
	}
	if c.Date != "" {
		if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
			return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
		}
	}
	if c.Time != "" && !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format %q (expected HH:MM)", c.Time)
	}
	if c.Priority != "" && !models.Priority(c.Priority).IsValid() {
		return fmt.Errorf("invalid priority %q (expected low, medium, or high)", c.Priority)
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if c.Title != "" {
		task.Title = c.Title
	}
	if c.Description != "" {
		task.Description = c.Description
	}
	if c.Category != "" {
		task.Category = c.Category
	}
	if c.Priority != "" {
		task.Priority = models.Priority(c.Priority)
	}
	if c.Complete {
		task.IsCompleted = true
	}
	if c.Reopen {
		task.IsCompleted = false
	}

	if c.Date != "" || c.Time != "" {
		date := task.Datetime.Format(constants.DateFormat)
		clock := task.Datetime.Format(constants.TimeFormat)
		if c.Date != "" {
			date = c.Date
		}
		if c.Time != "" {
			clock = c.Time
		}
		datetime, err := time.ParseInLocation(constants.DateFormat+" "+constants.TimeFormat, date+" "+clock, time.Local)
		if err != nil {
			return fmt.Errorf("failed to parse deadline: %w", err)
		}
		task.Datetime = datetime
	}

	if err := task.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	// Editing invalidates any pending notifications, so plan from scratch
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.ShowNotifications && !task.IsCompleted {
		ctx.Scheduler.ScheduleTask(&task, settings.Notifications, time.Now())
	}

	fmt.Printf("✓ Task updated: %s due %s\n", task.Title, utils.FormatDateTime(task.Datetime))
	return nil
}
