package models

import (
	"fmt"
	"time"
)

// SessionType is the phase a timer session is in.
type SessionType string

const (
	SessionWork      SessionType = "work"
	SessionBreak     SessionType = "break"
	SessionLongBreak SessionType = "long-break"
)

// TimerPreset is an immutable interval-timer template. Sessions reference it
// by id and copy its durations at phase start; they are never live-linked.
type TimerPreset struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Duration               int    `json:"duration"`                  // work phase, seconds
	BreakDuration          int    `json:"break_duration"`            // seconds
	LongBreakDuration      int    `json:"long_break_duration"`       // seconds
	AutoStartBreak         bool   `json:"auto_start_break"`          // start break when work completes
	AutoStartNextSession   bool   `json:"auto_start_next_session"`   // start work when break completes
	SessionsUntilLongBreak int    `json:"sessions_until_long_break"` // completed work phases before a long break
	Color                  string `json:"color,omitempty"`
}

func (p *TimerPreset) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if p.Duration <= 0 {
		return fmt.Errorf("preset duration must be positive")
	}
	if p.BreakDuration <= 0 {
		return fmt.Errorf("preset break duration must be positive")
	}
	if p.LongBreakDuration <= 0 {
		return fmt.Errorf("preset long break duration must be positive")
	}
	if p.SessionsUntilLongBreak <= 0 {
		return fmt.Errorf("sessions until long break must be positive")
	}
	return nil
}

// Interruption is a recorded pause window within a session. It is appended
// open (EndTime == StartTime) on pause and closed on resume.
type Interruption struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Reason    string    `json:"reason,omitempty"`
}

// Open reports whether the interruption has not been resolved yet.
func (i Interruption) Open() bool {
	return i.EndTime.Equal(i.StartTime)
}

// Duration is the length of a closed interruption.
func (i Interruption) Duration() time.Duration {
	return i.EndTime.Sub(i.StartTime)
}

// TimerSession is one run of an interval timer. SessionCount tracks completed
// work phases since the last long break. The most recent interruption may be
// open only while the session is paused.
type TimerSession struct {
	ID            string         `json:"id"`
	PresetID      string         `json:"preset_id"`
	StartTime     time.Time      `json:"start_time"`
	EndTime       time.Time      `json:"end_time"`
	Duration      int            `json:"duration"` // seconds, copied from the preset at phase start
	Completed     bool           `json:"completed"`
	Type          SessionType    `json:"type"`
	SessionCount  int            `json:"session_count"`
	Interruptions []Interruption `json:"interruptions"`
}

// Paused reports whether the session currently has an open interruption.
func (s *TimerSession) Paused() bool {
	if len(s.Interruptions) == 0 {
		return false
	}
	return s.Interruptions[len(s.Interruptions)-1].Open()
}

// InterruptedFor sums the lengths of all closed interruptions.
func (s *TimerSession) InterruptedFor() time.Duration {
	var total time.Duration
	for _, in := range s.Interruptions {
		if !in.Open() {
			total += in.Duration()
		}
	}
	return total
}
