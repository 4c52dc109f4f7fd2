package system

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/keyring"
	"github.com/flowdeck-app/flowdeck/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := requireUnlock(); err != nil {
		return err
	}
	return tui.Run(ctx.Store, ctx.Scheduler)
}

// requireUnlock prompts for the app-lock passphrase when one is set.
func requireUnlock() error {
	_, err := keyring.GetLockPassphrase()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		// Keyring trouble should not lock the user out of their own data
		return nil
	}

	var candidate string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("flowdeck is locked").
				Description("Enter your passphrase").
				EchoMode(huh.EchoModePassword).
				Value(&candidate),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	ok, err := keyring.VerifyLockPassphrase(candidate)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("incorrect passphrase")
	}
	return nil
}
