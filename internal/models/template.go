package models

import "fmt"

// ActionType enumerates the action kinds a notification can present.
type ActionType string

const (
	ActionView     ActionType = "view"
	ActionComplete ActionType = "complete"
	ActionPostpone ActionType = "postpone"
	ActionSkip     ActionType = "skip"
	ActionPause    ActionType = "pause"
	ActionRestart  ActionType = "restart"
	ActionExtend   ActionType = "extend"
	ActionSnooze   ActionType = "snooze"
	ActionDismiss  ActionType = "dismiss"
	ActionOpen     ActionType = "open"
)

// IsValid reports whether a is a known action kind.
func (a ActionType) IsValid() bool {
	switch a {
	case ActionView, ActionComplete, ActionPostpone, ActionSkip, ActionPause,
		ActionRestart, ActionExtend, ActionSnooze, ActionDismiss, ActionOpen:
		return true
	default:
		return false
	}
}

// NotificationAction is one presentable action attached to a template. Data
// carries opaque action parameters (for example the postpone offset).
type NotificationAction struct {
	Action ActionType     `json:"action"`
	Label  string         `json:"label"`
	Data   map[string]any `json:"data,omitempty"`
}

// NotificationTemplate is the message shape a notification renders through.
// Message may contain {placeholder} tokens substituted at render time.
type NotificationTemplate struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Sound   string               `json:"sound"`
	Message string               `json:"message"`
	Actions []NotificationAction `json:"actions"`
}

func (t *NotificationTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template id cannot be empty")
	}
	if t.Message == "" {
		return fmt.Errorf("template message cannot be empty")
	}
	for _, a := range t.Actions {
		if !a.Action.IsValid() {
			return fmt.Errorf("invalid template action %q", a.Action)
		}
	}
	return nil
}
