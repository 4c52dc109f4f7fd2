package storage

import (
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/storage/sqlite"
	"github.com/flowdeck-app/flowdeck/internal/timer"
)

// ErrNotFound is returned when a requested entity does not exist. Every
// provider wraps the same sentinel, which lives in the sqlite package so it
// sits below the import cycle.
var ErrNotFound = sqlite.ErrNotFound

// Provider is the persistence boundary. Core components consume snapshots
// from it and mutate entities through it; they hold no durable state of
// their own.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Categories
	AddCategory(models.Category) error
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(models.Category) error
	DeleteCategory(id string) error

	// Timer presets
	AddPreset(models.TimerPreset) error
	GetPreset(id string) (models.TimerPreset, error)
	GetAllPresets() ([]models.TimerPreset, error)
	UpdatePreset(models.TimerPreset) error
	DeletePreset(id string) error

	// Timer sessions
	AddSession(models.TimerSession) error
	GetSession(id string) (models.TimerSession, error)
	GetAllSessions() ([]models.TimerSession, error)
	UpdateSession(models.TimerSession) error
	DeleteSession(id string) error
}

// The session lifecycle mutators below load a session by id, apply one
// state machine transition, and write the session back. Unknown ids are
// reported; invalid transitions inside the state machine are safe no-ops.

// PauseSession records the start of an interruption on the session.
func PauseSession(p Provider, id, reason string, now time.Time) error {
	session, err := p.GetSession(id)
	if err != nil {
		return err
	}
	timer.Pause(&session, reason, now)
	return p.UpdateSession(session)
}

// ResumeSession closes the session's open interruption, if any.
func ResumeSession(p Provider, id string, now time.Time) error {
	session, err := p.GetSession(id)
	if err != nil {
		return err
	}
	timer.Resume(&session, now)
	return p.UpdateSession(session)
}

// CompleteSession marks the session done and reports whether a long break
// is due next.
func CompleteSession(p Provider, id string, now time.Time) (bool, error) {
	session, err := p.GetSession(id)
	if err != nil {
		return false, err
	}
	preset, err := p.GetPreset(session.PresetID)
	if err != nil {
		return false, err
	}
	longBreakDue := timer.Complete(&session, &preset, now)
	return longBreakDue, p.UpdateSession(session)
}

// StartBreak transitions the session into its break phase.
func StartBreak(p Provider, id string, now time.Time) error {
	session, err := p.GetSession(id)
	if err != nil {
		return err
	}
	preset, err := p.GetPreset(session.PresetID)
	if err != nil {
		return err
	}
	timer.StartBreak(&session, &preset, now)
	return p.UpdateSession(session)
}

// StartLongBreak transitions the session into its long-break phase.
func StartLongBreak(p Provider, id string, now time.Time) error {
	session, err := p.GetSession(id)
	if err != nil {
		return err
	}
	preset, err := p.GetPreset(session.PresetID)
	if err != nil {
		return err
	}
	timer.StartLongBreak(&session, &preset, now)
	return p.UpdateSession(session)
}

// EndBreak transitions the session back to the work phase.
func EndBreak(p Provider, id string, now time.Time) error {
	session, err := p.GetSession(id)
	if err != nil {
		return err
	}
	timer.EndBreak(&session, now)
	return p.UpdateSession(session)
}

// EndLongBreak transitions back to work and re-zeroes the phase counter.
func EndLongBreak(p Provider, id string, now time.Time) error {
	session, err := p.GetSession(id)
	if err != nil {
		return err
	}
	timer.EndLongBreak(&session, now)
	return p.UpdateSession(session)
}
