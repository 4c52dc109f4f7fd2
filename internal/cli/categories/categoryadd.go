package categories

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/models"
)

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color string `help:"Accent color (hex)." default:"#7aa2f7"`
	Order *int   `help:"Sort position. Defaults to after the last category."`
}

func (c *CategoryAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	existing, err := ctx.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}

	order := 0
	if c.Order != nil {
		order = *c.Order
	} else if len(existing) > 0 {
		order = existing[len(existing)-1].Order + 1
	}

	category := models.Category{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Color: c.Color,
		Order: order,
	}

	if err := ctx.Store.AddCategory(category); err != nil {
		return fmt.Errorf("failed to add category: %w", err)
	}

	fmt.Printf("✓ Category added: %s (order %d)\n", category.Name, category.Order)
	return nil
}
