package models

// NotificationSchedule is an optional gate on a notification channel. When
// enabled, notifications for that channel are only scheduled while the
// current weekday, category, priority, and time window all pass.
type NotificationSchedule struct {
	Enabled    bool        `json:"enabled"`
	Days       []DayOfWeek `json:"days,omitempty"`
	Categories []string    `json:"categories,omitempty"`
	Priorities []Priority  `json:"priorities,omitempty"`
	TimeRange  *TimeRange  `json:"time_range,omitempty"`
}

// TimerNotificationSettings controls notifications for running sessions.
type TimerNotificationSettings struct {
	BeforeEnd        bool                  `json:"before_end"`
	BeforeEndMinutes int                   `json:"before_end_minutes"`
	OnComplete       bool                  `json:"on_complete"`
	Schedule         *NotificationSchedule `json:"schedule,omitempty"`
	Template         string                `json:"template,omitempty"`
}

// TaskNotificationSettings controls notifications for task deadlines.
type TaskNotificationSettings struct {
	BeforeDeadline        bool                  `json:"before_deadline"`
	BeforeDeadlineMinutes int                   `json:"before_deadline_minutes"`
	OnDeadline            bool                  `json:"on_deadline"`
	RecurringTasks        bool                  `json:"recurring_tasks"`
	Schedule              *NotificationSchedule `json:"schedule,omitempty"`
	Template              string                `json:"template,omitempty"`
}

// QuietHours suppresses notification display inside a daily window.
type QuietHours struct {
	Enabled bool   `json:"enabled"`
	Start   string `json:"start"` // HH:MM
	End     string `json:"end"`   // HH:MM
}

// NotificationSettings is the full notification configuration: global sound
// and volume, per-channel toggles, quiet hours, and the rule and template
// catalogs the evaluator and scheduler consume.
type NotificationSettings struct {
	Sound              string                    `json:"sound"`
	Volume             int                       `json:"volume"` // 0-100
	TimerNotifications TimerNotificationSettings `json:"timer_notifications"`
	TaskNotifications  TaskNotificationSettings  `json:"task_notifications"`
	QuietHours         QuietHours                `json:"quiet_hours"`
	Templates          []NotificationTemplate    `json:"templates"`
	Rules              []NotificationRule        `json:"rules"`
}

// TemplateByID looks a template up in the catalog. The second return value
// is false when the id has no matching entry.
func (s *NotificationSettings) TemplateByID(id string) (NotificationTemplate, bool) {
	for _, t := range s.Templates {
		if t.ID == id {
			return t, true
		}
	}
	return NotificationTemplate{}, false
}

// Settings is the application-wide configuration persisted in the store.
type Settings struct {
	Theme                string               `json:"theme"`
	ShowNotifications    bool                 `json:"show_notifications"`
	DefaultTimerDuration int                  `json:"default_timer_duration"` // seconds
	Notifications        NotificationSettings `json:"notifications"`
}

// DefaultSettings returns the settings a fresh store is seeded with.
func DefaultSettings() Settings {
	return Settings{
		Theme:                "dark",
		ShowNotifications:    true,
		DefaultTimerDuration: 25 * 60,
		Notifications: NotificationSettings{
			Sound:  "default",
			Volume: 70,
			TimerNotifications: TimerNotificationSettings{
				BeforeEnd:        true,
				BeforeEndMinutes: 5,
				OnComplete:       true,
			},
			TaskNotifications: TaskNotificationSettings{
				BeforeDeadline:        true,
				BeforeDeadlineMinutes: 30,
				OnDeadline:            true,
				RecurringTasks:        true,
			},
			QuietHours: QuietHours{
				Enabled: false,
				Start:   "22:00",
				End:     "07:00",
			},
			Templates: DefaultTemplates(),
		},
	}
}

// DefaultTemplates is the built-in notification template catalog.
func DefaultTemplates() []NotificationTemplate {
	return []NotificationTemplate{
		{
			ID:      "task-default",
			Name:    "Task reminder",
			Message: "{title} - due {time}\n{description}",
			Sound:   "default",
			Actions: []NotificationAction{
				{Action: ActionView, Label: "View"},
				{Action: ActionComplete, Label: "Done"},
			},
		},
		{
			ID:      "task-deadline",
			Name:    "Task deadline",
			Message: "{title} is due at {time}\n{description}",
			Sound:   "alert",
			Actions: []NotificationAction{
				{Action: ActionView, Label: "View"},
				{Action: ActionComplete, Label: "Done"},
				{Action: ActionPostpone, Label: "Postpone", Data: map[string]any{"minutes": 30}},
			},
		},
		{
			ID:      "task-recurring",
			Name:    "Recurring task",
			Message: "{title} - next: {time}\n{description}",
			Sound:   "default",
			Actions: []NotificationAction{
				{Action: ActionView, Label: "View"},
				{Action: ActionSkip, Label: "Skip"},
			},
		},
		{
			ID:      "timer-start",
			Name:    "Timer started",
			Message: "{title} started\nTarget: {duration} min",
			Sound:   "start",
			Actions: []NotificationAction{
				{Action: ActionView, Label: "View"},
				{Action: ActionPause, Label: "Pause"},
			},
		},
		{
			ID:      "timer-complete",
			Name:    "Timer complete",
			Message: "{title} complete!\nElapsed: {elapsed} min",
			Sound:   "complete",
			Actions: []NotificationAction{
				{Action: ActionView, Label: "View"},
				{Action: ActionRestart, Label: "Restart"},
			},
		},
		{
			ID:      "break-start",
			Name:    "Break started",
			Message: "Time for a break\nStarting a {duration} minute break",
			Sound:   "break",
			Actions: []NotificationAction{
				{Action: ActionView, Label: "View"},
				{Action: ActionSkip, Label: "Skip"},
			},
		},
		{
			ID:      "break-complete",
			Name:    "Break over",
			Message: "Break over!\nReady for the next session",
			Sound:   "alert",
			Actions: []NotificationAction{
				{Action: ActionView, Label: "View"},
				{Action: ActionExtend, Label: "Extend", Data: map[string]any{"minutes": 5}},
			},
		},
	}
}
