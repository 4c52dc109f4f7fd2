package system

import (
	"fmt"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/keyring"
	"github.com/flowdeck-app/flowdeck/internal/validation"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	presets, err := ctx.Store.GetAllPresets()
	if err != nil {
		return fmt.Errorf("failed to load presets: %w", err)
	}
	sessions, err := ctx.Store.GetAllSessions()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	validator := validation.New()
	result := validator.Validate(validation.Snapshot{
		Tasks:      tasks,
		Categories: categories,
		Presets:    presets,
		Sessions:   sessions,
		Settings:   settings,
	})

	fmt.Println(result.FormatReport())

	if keyring.IsAvailable() {
		fmt.Println("OS keyring: available")
	} else {
		fmt.Println("OS keyring: unavailable (app lock disabled)")
	}

	fmt.Printf("%d tasks, %d categories, %d presets, %d sessions, %d rules, %d templates\n",
		len(tasks), len(categories), len(presets), len(sessions),
		len(settings.Notifications.Rules), len(settings.Notifications.Templates))

	return nil
}
