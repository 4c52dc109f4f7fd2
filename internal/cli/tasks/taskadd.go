package tasks

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Date        string `help:"Deadline date (YYYY-MM-DD)." required:""`
	Time        string `help:"Deadline time (HH:MM)." required:""`
	Description string `help:"Optional description."`
	Category    string `help:"Category id."`
	Priority    string `help:"Priority band (low|medium|high)." default:"medium"`
	Recurrence  string `help:"Recurrence type (daily|weekly|monthly) for a recurring task."`
	Interval    int    `help:"Recurrence interval in units of the recurrence type." default:"1"`
	Until       string `help:"Last date (YYYY-MM-DD, exclusive) for a recurring task."`
}

func (c *TaskAddCmd) Validate() error {
	if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
		return fmt.Errorf("invalid date format (expected YYYY-MM-DD): %w", err)
	}
	if !utils.ValidateTimeFormat(c.Time) {
		return fmt.Errorf("invalid time format %q (expected HH:MM)", c.Time)
	}
	if !models.Priority(c.Priority).IsValid() {
		return fmt.Errorf("invalid priority %q (expected low, medium, or high)", c.Priority)
	}

	if c.Recurrence != "" {
		switch models.RecurrenceType(c.Recurrence) {
		case models.RecurrenceDaily, models.RecurrenceWeekly, models.RecurrenceMonthly:
		default:
			return fmt.Errorf("invalid recurrence type %q (expected daily, weekly, or monthly)", c.Recurrence)
		}
		if c.Interval < 1 {
			return fmt.Errorf("recurrence interval must be at least 1")
		}
	}

	if c.Until != "" {
		if c.Recurrence == "" {
			return fmt.Errorf("--until requires --recurrence")
		}
		if _, err := time.Parse(constants.DateFormat, c.Until); err != nil {
			return fmt.Errorf("invalid until date format (expected YYYY-MM-DD): %w", err)
		}
	}

	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.Load(); err != nil {
		return err
	}

	datetime, err := time.ParseInLocation(constants.DateFormat+" "+constants.TimeFormat, c.Date+" "+c.Time, time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse deadline: %w", err)
	}

	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Datetime:    datetime,
		Category:    c.Category,
		Priority:    models.Priority(c.Priority),
	}

	if c.Recurrence != "" {
		task.IsRecurring = true
		task.Recurring = &models.RecurringPattern{
			Type:     models.RecurrenceType(c.Recurrence),
			Interval: c.Interval,
		}
		if c.Until != "" {
			until, err := time.ParseInLocation(constants.DateFormat, c.Until, time.Local)
			if err != nil {
				return fmt.Errorf("failed to parse until date: %w", err)
			}
			task.Recurring.EndDate = &until
		}
	}

	if err := task.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddTask(task); err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if settings.ShowNotifications {
		ctx.Scheduler.ScheduleTask(&task, settings.Notifications, time.Now())
	}

	fmt.Printf("✓ Task added: %s due %s", task.Title, utils.FormatDateTime(task.Datetime))
	if task.IsRecurring {
		fmt.Printf(" (repeats every %d %s)", task.Recurring.Interval, task.Recurring.Type)
	}
	fmt.Println()

	return nil
}
