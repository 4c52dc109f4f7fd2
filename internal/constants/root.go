package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "flowdeck"
	DefaultConfigPath = "~/.config/flowdeck/flowdeck.db"
	Version           = "v0.3.0"

	// KeyringLockUser is the keyring account under which the app-lock
	// passphrase is stored.
	KeyringLockUser = "app-lock"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is used when a notification refers to an occurrence on
	// another day (YYYY/MM/DD HH:MM)
	DateTimeFormat = "2006/01/02 15:04"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "flowdeck-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "app.flowdeck.tray"

	// DefaultTemplateID is the template used for task notifications when
	// neither a rule nor the settings name one.
	DefaultTemplateID = "task-default"

	// RecurringHorizonMonths bounds how far ahead recurring tasks are
	// expanded into scheduled notifications.
	RecurringHorizonMonths = 3

	// CountdownTick is the interval of the TUI countdown clock.
	CountdownTick = time.Second
)

// Session States
const (
	StateTimer SessionState = iota
	StateTasks
	StateRules
	StatePresetPicker
	StatePauseReason
	StateConfirmDelete
)
