package templates

import (
	"fmt"
	"strings"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	templates := settings.Notifications.Templates
	if len(templates) == 0 {
		fmt.Println("No notification templates configured.")
		return nil
	}

	fmt.Printf("%-16s %-20s %-10s %-40s\n", "ID", "Name", "Sound", "Message")
	fmt.Println(strings.Repeat("-", 90))

	for _, tpl := range templates {
		message := strings.ReplaceAll(tpl.Message, "\n", " / ")
		if len(message) > 38 {
			message = message[:35] + "..."
		}
		fmt.Printf("%-16s %-20s %-10s %-40s\n", tpl.ID, tpl.Name, tpl.Sound, message)
	}

	return nil
}
