package tasks

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

type TaskListCmd struct {
	All      bool   `help:"Include completed tasks."`
	Category string `help:"Only tasks in this category id."`
	Overdue  bool   `help:"Only overdue tasks."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	now := time.Now()
	filtered := tasks[:0]
	for _, task := range tasks {
		if !c.All && task.IsCompleted {
			continue
		}
		if c.Category != "" && task.Category != c.Category {
			continue
		}
		if c.Overdue && !task.IsOverdue(now) {
			continue
		}
		filtered = append(filtered, task)
	}

	if len(filtered) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Datetime.Before(filtered[j].Datetime)
	})

	fmt.Printf("%-36s %-30s %-18s %-8s %-10s %-6s\n", "ID", "Title", "Due", "Priority", "Status", "Repeat")
	fmt.Println(strings.Repeat("-", 114))

	for _, task := range filtered {
		title := task.Title
		if len(title) > 28 {
			title = title[:25] + "..."
		}

		status := "pending"
		if task.IsCompleted {
			status = "done"
		} else if task.IsOverdue(now) {
			status = "overdue"
		}

		repeat := "-"
		if task.IsRecurring && task.Recurring != nil {
			repeat = string(task.Recurring.Type)
		}

		fmt.Printf("%-36s %-30s %-18s %-8s %-10s %-6s\n",
			task.ID, title, utils.FormatDateTime(task.Datetime), task.Priority, status, repeat)
	}

	return nil
}
