package tasks

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	task, err := ctx.Store.GetTask(c.ID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("✓ Task deleted: %s\n", task.Title)
	return nil
}
