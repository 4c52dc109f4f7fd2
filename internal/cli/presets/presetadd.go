package presets

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/models"
)

type PresetAddCmd struct {
	Name           string `arg:"" help:"Preset name."`
	Duration       int    `help:"Work phase length in minutes." default:"25"`
	Break          int    `help:"Break length in minutes." default:"5"`
	LongBreak      int    `help:"Long break length in minutes." default:"15"`
	Sessions       int    `help:"Work phases before a long break." default:"4"`
	AutoBreak      bool   `help:"Start the break automatically when work completes."`
	AutoNext       bool   `help:"Start the next work phase automatically when a break ends."`
	Color          string `help:"Accent color (hex)."`
}

func (c *PresetAddCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	preset := models.TimerPreset{
		ID:                     uuid.New().String(),
		Name:                   c.Name,
		Duration:               c.Duration * 60,
		BreakDuration:          c.Break * 60,
		LongBreakDuration:      c.LongBreak * 60,
		AutoStartBreak:         c.AutoBreak,
		AutoStartNextSession:   c.AutoNext,
		SessionsUntilLongBreak: c.Sessions,
		Color:                  c.Color,
	}

	if err := preset.Validate(); err != nil {
		return err
	}

	if err := ctx.Store.AddPreset(preset); err != nil {
		return fmt.Errorf("failed to add preset: %w", err)
	}

	fmt.Printf("✓ Preset added: %s (%dm work / %dm break / %dm long break)\n",
		preset.Name, c.Duration, c.Break, c.LongBreak)
	return nil
}
