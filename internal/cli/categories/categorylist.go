package categories

import (
	"fmt"
	"strings"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to get categories: %w", err)
	}

	if len(categories) == 0 {
		fmt.Println("No categories configured.")
		return nil
	}

	fmt.Printf("%-36s %-20s %-9s %-6s\n", "ID", "Name", "Color", "Order")
	fmt.Println(strings.Repeat("-", 74))

	for _, category := range categories {
		fmt.Printf("%-36s %-20s %-9s %-6d\n", category.ID, category.Name, category.Color, category.Order)
	}

	return nil
}
