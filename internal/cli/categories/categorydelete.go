package categories

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type CategoryDeleteCmd struct {
	ID string `arg:"" help:"Category id to delete."`
}

func (c *CategoryDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	// Tasks referencing the category keep their reference; the validator
	// flags them as dangling on the next doctor run.
	if err := ctx.Store.DeleteCategory(c.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	fmt.Println("✓ Category deleted.")
	return nil
}
