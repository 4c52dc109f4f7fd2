package system

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/flowdeck-app/flowdeck/internal/cli"
	"github.com/flowdeck-app/flowdeck/internal/keyring"
)

type LockSetCmd struct{}

func (c *LockSetCmd) Run(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return errors.New("OS keyring is not available on this system")
	}

	var passphrase, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Passphrase").
				EchoMode(huh.EchoModePassword).
				Value(&passphrase),
			huh.NewInput().
				Title("Confirm passphrase").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if passphrase != confirm {
		return errors.New("passphrases do not match")
	}

	if err := keyring.SetLockPassphrase(passphrase); err != nil {
		return err
	}

	fmt.Println("App lock enabled.")
	return nil
}

type LockClearCmd struct{}

func (c *LockClearCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteLockPassphrase(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("App lock is not set.")
			return nil
		}
		return err
	}

	fmt.Println("App lock disabled.")
	return nil
}

type LockStatusCmd struct{}

func (c *LockStatusCmd) Run(ctx *cli.Context) error {
	_, err := keyring.GetLockPassphrase()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("App lock: disabled")
			return nil
		}
		return err
	}

	fmt.Println("App lock: enabled")
	return nil
}
