package presets

import (
	"fmt"
	"strings"

	"github.com/flowdeck-app/flowdeck/internal/cli"
)

type PresetListCmd struct{}

func (c *PresetListCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	presets, err := ctx.Store.GetAllPresets()
	if err != nil {
		return fmt.Errorf("failed to get presets: %w", err)
	}

	if len(presets) == 0 {
		fmt.Println("No timer presets configured.")
		return nil
	}

	fmt.Printf("%-36s %-20s %-6s %-7s %-10s %-9s %-10s\n", "ID", "Name", "Work", "Break", "Long break", "Sessions", "Auto")
	fmt.Println(strings.Repeat("-", 104))

	for _, preset := range presets {
		name := preset.Name
		if len(name) > 18 {
			name = name[:15] + "..."
		}

		auto := "-"
		switch {
		case preset.AutoStartBreak && preset.AutoStartNextSession:
			auto = "break+next"
		case preset.AutoStartBreak:
			auto = "break"
		case preset.AutoStartNextSession:
			auto = "next"
		}

		fmt.Printf("%-36s %-20s %-6s %-7s %-10s %-9d %-10s\n",
			preset.ID, name,
			fmt.Sprintf("%dm", preset.Duration/60),
			fmt.Sprintf("%dm", preset.BreakDuration/60),
			fmt.Sprintf("%dm", preset.LongBreakDuration/60),
			preset.SessionsUntilLongBreak, auto)
	}

	return nil
}
