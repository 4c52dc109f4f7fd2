package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/cli/categories"
	"github.com/flowdeck-app/flowdeck/internal/cli/presets"
	"github.com/flowdeck-app/flowdeck/internal/cli/rules"
	"github.com/flowdeck-app/flowdeck/internal/cli/settings"
	"github.com/flowdeck-app/flowdeck/internal/cli/system"
	"github.com/flowdeck-app/flowdeck/internal/cli/tasks"
	"github.com/flowdeck-app/flowdeck/internal/cli/templates"
	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/errors"
	"github.com/flowdeck-app/flowdeck/internal/logger"
	"github.com/flowdeck-app/flowdeck/internal/notifier"
	"github.com/flowdeck-app/flowdeck/internal/sched"
	"github.com/flowdeck-app/flowdeck/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json extension selects the JSON snapshot store, anything else SQLite." type:"path" default:"~/.config/flowdeck/flowdeck.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init   system.InitCmd   `cmd:"" help:"Initialize flowdeck storage."`
	Doctor system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui    system.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Stats  system.StatsCmd  `cmd:"" help:"Show timer and task statistics."`
	Task   struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List tasks."`
		Edit   tasks.TaskEditCmd   `cmd:"" help:"Edit an existing task."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Rule struct {
		Add    rules.RuleAddCmd    `cmd:"" help:"Add a notification rule."`
		List   rules.RuleListCmd   `cmd:"" help:"List notification rules."`
		Delete rules.RuleDeleteCmd `cmd:"" help:"Delete a notification rule."`
		Test   rules.RuleTestCmd   `cmd:"" help:"Dry-run the rule set against an event."`
	} `cmd:"" help:"Manage notification rules."`
	Template struct {
		List templates.TemplateListCmd `cmd:"" help:"List notification templates."`
	} `cmd:"" help:"Manage notification templates."`
	Preset struct {
		Add  presets.PresetAddCmd  `cmd:"" help:"Add a timer preset."`
		List presets.PresetListCmd `cmd:"" help:"List timer presets."`
	} `cmd:"" help:"Manage timer presets."`
	Category struct {
		Add    categories.CategoryAddCmd    `cmd:"" help:"Add a task category."`
		List   categories.CategoryListCmd   `cmd:"" help:"List task categories."`
		Delete categories.CategoryDeleteCmd `cmd:"" help:"Delete a task category."`
	} `cmd:"" help:"Manage task categories."`
	Lock struct {
		Set    system.LockSetCmd    `cmd:"" help:"Set the app-lock passphrase."`
		Clear  system.LockClearCmd  `cmd:"" help:"Remove the app-lock passphrase."`
		Status system.LockStatusCmd `cmd:"" help:"Show app-lock status."`
	} `cmd:"" help:"Manage the app lock."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Notify   system.NotifyCmd     `cmd:"" hidden:"" help:"Fire due notifications (used internally)."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Focus timer and task reminder companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: filepath.Dir(CLI.Config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
	}

	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	display := notifier.New()
	appCtx := &cli.Context{
		Store:     store,
		Scheduler: sched.New(display, display),
		Debug:     CLI.Debug,
	}

	err := ctx.Run(appCtx)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	errors.Fatal(err)
}
