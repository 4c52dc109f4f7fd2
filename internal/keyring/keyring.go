// Package keyring wraps the OS keyring for the app-lock passphrase.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/flowdeck-app/flowdeck/internal/constants"
)

var (
	// ErrNotFound is returned when no passphrase is stored in the keyring
	ErrNotFound = errors.New("passphrase not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetLockPassphrase retrieves the app-lock passphrase from the OS keyring.
// Returns ErrNotFound if no passphrase is stored.
func GetLockPassphrase() (string, error) {
	passphrase, err := keyring.Get(constants.AppName, constants.KeyringLockUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return passphrase, nil
}

// SetLockPassphrase stores the app-lock passphrase in the OS keyring.
func SetLockPassphrase(passphrase string) error {
	if passphrase == "" {
		return errors.New("passphrase cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.KeyringLockUser, passphrase); err != nil {
		return fmt.Errorf("failed to store passphrase in keyring: %w", err)
	}
	return nil
}

// DeleteLockPassphrase removes the app-lock passphrase from the OS keyring.
func DeleteLockPassphrase() error {
	err := keyring.Delete(constants.AppName, constants.KeyringLockUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete passphrase from keyring: %w", err)
	}
	return nil
}

// VerifyLockPassphrase checks a candidate against the stored passphrase.
// A missing stored passphrase means the lock is not set and anything passes.
func VerifyLockPassphrase(candidate string) (bool, error) {
	stored, err := GetLockPassphrase()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, nil
		}
		return false, err
	}
	return stored == candidate, nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	return err == nil || err == keyring.ErrNotFound
}
