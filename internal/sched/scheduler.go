// Package sched turns notification decisions into deferred, cancellable
// fire-once callbacks. Planning is pure and parameterised on now; arming
// wraps each planned entry in a timer handle the caller can cancel as a
// batch when the underlying task or session changes.
package sched

import (
	"strconv"
	"sync"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/logger"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/notify"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

// Display is the external notification-display collaborator.
type Display interface {
	Show(title, body string, actions []notify.ActionDescriptor) error
}

// SoundPlayer is the external sound-playback collaborator.
type SoundPlayer interface {
	Play(sound string, volume int) error
}

// Handle is one live deferred notification. Cancel is idempotent and a no-op
// once the callback has fired.
type Handle struct {
	timer *time.Timer
}

// Cancel stops the pending callback if it has not fired yet.
func (h *Handle) Cancel() {
	if h != nil && h.timer != nil {
		h.timer.Stop()
	}
}

// Entry is one planned notification: fire Vars through the plan's template
// after Delay.
type Entry struct {
	Delay time.Duration
	Vars  notify.Vars
}

// Plan is the pure scheduling decision for a task or session: the effective
// template (after rule overrides), the effective sound, and the deferred
// entries to arm. An empty plan means nothing fires.
type Plan struct {
	Template models.NotificationTemplate
	Sound    string
	Entries  []Entry
}

// Scheduler arms plans against the wall clock and hands fired notifications
// to the display and sound collaborators.
type Scheduler struct {
	display Display
	sounds  SoundPlayer

	mu      sync.Mutex
	pending []*Handle
}

// New creates a Scheduler bound to its collaborators.
func New(display Display, sounds SoundPlayer) *Scheduler {
	return &Scheduler{
		display: display,
		sounds:  sounds,
	}
}

// PlanTask computes the notification plan for a task per the current
// settings. It is deterministic for fixed inputs including now.
//
// The rule evaluator gates the whole plan; a muted task plans nothing. The
// template resolves rule override first, then the task channel's configured
// template, then the built-in default; a missing template means the task
// cannot be scheduled and the plan is empty. For the task's own deadline a
// before-deadline and an on-deadline entry are planned independently. A
// recurring task is expanded into future occurrences, each planned with the
// same before/on logic relative to that occurrence.
func PlanTask(task *models.Task, settings models.NotificationSettings, now time.Time) Plan {
	result := notify.Evaluate(settings.Rules, notify.TaskEvent(task), now)
	if !result.ShouldNotify {
		return Plan{}
	}

	if !notify.ScheduleAllows(settings.TaskNotifications.Schedule, task, now) {
		return Plan{}
	}

	templateID := result.Template
	if templateID == "" {
		templateID = settings.TaskNotifications.Template
	}
	if templateID == "" {
		templateID = "task-default"
	}
	template, ok := settings.TemplateByID(templateID)
	if !ok {
		logger.Warn("notification template not found, skipping task", "template", templateID, "task", task.ID)
		return Plan{}
	}

	sound := result.Sound
	if sound == "" {
		sound = template.Sound
	}
	if sound == "" {
		sound = settings.Sound
	}

	if result.Message != "" {
		template.Message = result.Message
	}

	plan := Plan{Template: template, Sound: sound}

	cfg := settings.TaskNotifications
	minutesUntilDeadline := utils.MinutesUntil(now, task.Datetime)

	if cfg.BeforeDeadline && minutesUntilDeadline > cfg.BeforeDeadlineMinutes {
		delay := time.Duration(minutesUntilDeadline-cfg.BeforeDeadlineMinutes) * time.Minute
		plan.Entries = append(plan.Entries, Entry{Delay: delay, Vars: taskVars(task, utils.FormatClock(task.Datetime))})
	}

	if cfg.OnDeadline && minutesUntilDeadline > 0 {
		delay := time.Duration(minutesUntilDeadline) * time.Minute
		plan.Entries = append(plan.Entries, Entry{Delay: delay, Vars: taskVars(task, utils.FormatClock(task.Datetime))})
	}

	if cfg.RecurringTasks && task.IsRecurring && task.Recurring != nil {
		for _, occurrence := range utils.ExpandOccurrences(task.Datetime, *task.Recurring, now) {
			minutesUntilNext := utils.MinutesUntil(now, occurrence)

			if cfg.BeforeDeadline && minutesUntilNext > cfg.BeforeDeadlineMinutes {
				delay := time.Duration(minutesUntilNext-cfg.BeforeDeadlineMinutes) * time.Minute
				plan.Entries = append(plan.Entries, Entry{Delay: delay, Vars: taskVars(task, utils.FormatDateTime(occurrence))})
			}
			if cfg.OnDeadline && minutesUntilNext > 0 {
				delay := time.Duration(minutesUntilNext) * time.Minute
				plan.Entries = append(plan.Entries, Entry{Delay: delay, Vars: taskVars(task, utils.FormatDateTime(occurrence))})
			}
		}
	}

	return plan
}

// PlanSession computes the notification plan for a running timer session
// phase: a before-end entry and an on-complete entry, per the timer channel
// settings and rule overrides. The default template follows the phase, so
// break phases announce themselves as breaks.
func PlanSession(session *models.TimerSession, preset *models.TimerPreset, settings models.NotificationSettings, now time.Time) Plan {
	result := notify.Evaluate(settings.Rules, notify.TimerEvent(session), now)
	if !result.ShouldNotify {
		return Plan{}
	}

	templateID := result.Template
	if templateID == "" {
		templateID = settings.TimerNotifications.Template
	}
	if templateID == "" {
		if session.Type == models.SessionWork {
			templateID = "timer-complete"
		} else {
			templateID = "break-complete"
		}
	}
	template, ok := settings.TemplateByID(templateID)
	if !ok {
		logger.Warn("notification template not found, skipping session", "template", templateID, "session", session.ID)
		return Plan{}
	}

	sound := result.Sound
	if sound == "" {
		sound = template.Sound
	}
	if sound == "" {
		sound = settings.Sound
	}

	if result.Message != "" {
		template.Message = result.Message
	}

	plan := Plan{Template: template, Sound: sound}

	// Closed interruptions push the phase end out by the paused time, the
	// same way the countdown extends.
	endAt := session.StartTime.Add(time.Duration(session.Duration)*time.Second + session.InterruptedFor())
	minutesUntilEnd := utils.MinutesUntil(now, endAt)
	durationMinutes := session.Duration / 60

	cfg := settings.TimerNotifications
	if cfg.BeforeEnd && minutesUntilEnd > cfg.BeforeEndMinutes {
		delay := time.Duration(minutesUntilEnd-cfg.BeforeEndMinutes) * time.Minute
		plan.Entries = append(plan.Entries, Entry{Delay: delay, Vars: sessionVars(preset, durationMinutes, durationMinutes-cfg.BeforeEndMinutes)})
	}
	if cfg.OnComplete && minutesUntilEnd > 0 {
		delay := time.Duration(minutesUntilEnd) * time.Minute
		plan.Entries = append(plan.Entries, Entry{Delay: delay, Vars: sessionVars(preset, durationMinutes, durationMinutes)})
	}

	return plan
}

// taskVars builds the template vars for one task entry; when is the formatted
// deadline that entry refers to.
func taskVars(task *models.Task, when string) notify.Vars {
	return notify.Vars{
		"title":       task.Title,
		"time":        when,
		"description": task.Description,
	}
}

// sessionVars builds the template vars for one session entry; elapsed is the
// minutes of the phase that will have run when that entry fires.
func sessionVars(preset *models.TimerPreset, durationMinutes, elapsedMinutes int) notify.Vars {
	return notify.Vars{
		"title":    preset.Name,
		"duration": strconv.Itoa(durationMinutes),
		"elapsed":  strconv.Itoa(elapsedMinutes),
	}
}

// ScheduleTask plans and arms notifications for a task, returning the live
// handles so the caller can cancel them when the task is edited or deleted.
func (s *Scheduler) ScheduleTask(task *models.Task, settings models.NotificationSettings, now time.Time) []*Handle {
	return s.arm(PlanTask(task, settings, now), settings)
}

// ScheduleSession plans and arms notifications for a running session.
func (s *Scheduler) ScheduleSession(session *models.TimerSession, preset *models.TimerPreset, settings models.NotificationSettings, now time.Time) []*Handle {
	return s.arm(PlanSession(session, preset, settings, now), settings)
}

// Cancel clears every pending deferred callback in the batch. It is
// idempotent and safe to call on empty lists or handles that already fired.
func (s *Scheduler) Cancel(handles []*Handle) {
	for _, h := range handles {
		h.Cancel()
	}
}

// RescheduleTask cancels the old handles and schedules the task afresh.
// There is no partial preservation of not-yet-fired entries.
func (s *Scheduler) RescheduleTask(task *models.Task, settings models.NotificationSettings, old []*Handle, now time.Time) []*Handle {
	s.Cancel(old)
	return s.ScheduleTask(task, settings, now)
}

func (s *Scheduler) arm(plan Plan, settings models.NotificationSettings) []*Handle {
	var handles []*Handle
	for _, entry := range plan.Entries {
		entry := entry

		fire := time.AfterFunc(entry.Delay, func() {
			s.fire(plan.Template, entry.Vars, settings)
		})
		handles = append(handles, &Handle{timer: fire})

		// Sound plays on its own handle at the same delay
		if plan.Sound != "" {
			sound := plan.Sound
			play := time.AfterFunc(entry.Delay, func() {
				if err := s.sounds.Play(sound, settings.Volume); err != nil {
					logger.Warn("failed to play notification sound", "sound", sound, "error", err)
				}
			})
			handles = append(handles, &Handle{timer: play})
		}
	}

	s.mu.Lock()
	s.pending = append(s.pending, handles...)
	s.mu.Unlock()

	return handles
}

func (s *Scheduler) fire(template models.NotificationTemplate, vars notify.Vars, settings models.NotificationSettings) {
	if settings.QuietHours.Enabled {
		window := models.TimeRange{Start: settings.QuietHours.Start, End: settings.QuietHours.End}
		if window.Contains(utils.FormatClock(time.Now())) {
			logger.Debug("notification suppressed by quiet hours", "template", template.ID)
			return
		}
	}

	rendered := notify.Render(template, vars)
	if err := s.display.Show(rendered.Title, rendered.Body, rendered.Actions); err != nil {
		logger.Warn("failed to display notification", "template", template.ID, "error", err)
	}
}

// CancelAll cancels every handle this scheduler has armed. Used on shutdown.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, h := range pending {
		h.Cancel()
	}
}
