package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/storage"
	"github.com/flowdeck-app/flowdeck/internal/timer"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(constants.CountdownTick, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle Pause Reason State
	if m.state == constants.StatePauseReason {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = constants.StateTimer
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			if m.session != nil {
				if err := storage.PauseSession(m.store, m.session.ID, m.pauseForm.Reason, time.Now()); err == nil {
					m.reloadSession(m.session.ID)
				}
				m.cancelHandles()
			}
			m.state = constants.StateTimer
		case huh.StateAborted:
			m.state = constants.StateTimer
		}
		return m, tea.Batch(cmds...)
	}

	// Handle Confirm Delete State
	if m.state == constants.StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y":
				if err := m.store.DeleteTask(m.taskToDeleteID); err == nil {
					m.reloadTasks()
				}
				m.taskToDeleteID = ""
				m.state = constants.StateTasks
			case "n", "esc":
				m.taskToDeleteID = ""
				m.state = constants.StateTasks
			}
		}
		return m, nil
	}

	// Handle Preset Picker State
	if m.state == constants.StatePresetPicker {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.keys.Up):
				if m.presetIndex > 0 {
					m.presetIndex--
				}
			case key.Matches(msg, m.keys.Down):
				if m.presetIndex < len(m.presets)-1 {
					m.presetIndex++
				}
			case key.Matches(msg, m.keys.Enter):
				if len(m.presets) > 0 {
					m.preset = &m.presets[m.presetIndex]
				}
				m.state = constants.StateTimer
			case msg.Type == tea.KeyEsc:
				m.state = constants.StateTimer
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.taskList.SetSize(msg.Width-4, msg.Height-6)
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case TickMsg:
		m.now = time.Time(msg)
		m.advanceTimer(m.now)
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.state == constants.StateTasks && m.taskList.FilterState() == list.Filtering {
				break
			}
			m.quitting = true
			m.cancelHandles()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.state = nextView(m.state, 1)
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.state = nextView(m.state, -1)
			return m, nil
		}

		switch m.state {
		case constants.StateTimer:
			return m.updateTimer(msg)
		case constants.StateTasks:
			return m.updateTasks(msg)
		}
	}

	if m.state == constants.StateTasks {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func nextView(state constants.SessionState, delta int) constants.SessionState {
	views := []constants.SessionState{constants.StateTimer, constants.StateTasks, constants.StateRules}
	for i, v := range views {
		if v == state {
			return views[(i+delta+len(views))%len(views)]
		}
	}
	return constants.StateTimer
}

func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		now := time.Now()
		switch {
		case m.session == nil:
			m.startSession(now)
		case m.session.Paused():
			if err := storage.ResumeSession(m.store, m.session.ID, now); err == nil {
				m.reloadSession(m.session.ID)
				m.scheduleSessionNotifications(now)
			}
		case m.session.Completed:
			// Waiting for the user to start the due break
			m.startBreak(now)
		default:
			m.pauseForm = &PauseFormModel{}
			m.form = newPauseForm(m.pauseForm)
			m.state = constants.StatePauseReason
			return m, m.form.Init()
		}

	case key.Matches(msg, m.keys.Stop):
		if m.session != nil {
			m.cancelHandles()
			m.session = nil
			m.longBreakDue = false
		}

	case key.Matches(msg, m.keys.Preset):
		if len(m.presets) > 0 {
			m.state = constants.StatePresetPicker
		}
	}
	return m, nil
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Complete):
		if item, ok := m.taskList.SelectedItem().(taskItem); ok {
			task := item.task
			task.IsCompleted = !task.IsCompleted
			if err := m.store.UpdateTask(task); err == nil {
				m.reloadTasks()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.taskList.SelectedItem().(taskItem); ok {
			m.taskToDeleteID = item.task.ID
			m.state = constants.StateConfirmDelete
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// startSession begins a fresh work phase from the selected preset, carrying
// the completion counter forward from the previous session if one just ended.
func (m *Model) startSession(now time.Time) {
	if m.preset == nil {
		return
	}

	sessionCount := 0
	if m.session != nil {
		sessionCount = m.session.SessionCount
	}

	session := timer.Start(m.preset, sessionCount, now)
	if err := m.store.AddSession(session); err != nil {
		return
	}
	m.session = &session
	m.longBreakDue = false
	m.scheduleSessionNotifications(now)
}

func (m *Model) startBreak(now time.Time) {
	if m.session == nil {
		return
	}

	var err error
	if m.longBreakDue {
		err = storage.StartLongBreak(m.store, m.session.ID, now)
	} else {
		err = storage.StartBreak(m.store, m.session.ID, now)
	}
	if err != nil {
		return
	}
	m.reloadSession(m.session.ID)
	m.longBreakDue = false
	m.scheduleSessionNotifications(now)
}

// advanceTimer drives phase transitions when the countdown reaches zero.
func (m *Model) advanceTimer(now time.Time) {
	if m.session == nil || m.session.Paused() {
		return
	}
	if timer.Remaining(m.session, now) > 0 {
		return
	}

	switch m.session.Type {
	case models.SessionWork:
		if m.session.Completed {
			// Already completed, waiting for the user to start the break
			return
		}
		longBreakDue, err := storage.CompleteSession(m.store, m.session.ID, now)
		if err != nil {
			return
		}
		m.cancelHandles()
		m.reloadSession(m.session.ID)
		m.longBreakDue = longBreakDue
		if m.preset != nil && m.preset.AutoStartBreak {
			m.startBreak(now)
		}

	case models.SessionBreak:
		if err := storage.EndBreak(m.store, m.session.ID, now); err != nil {
			return
		}
		m.reloadSession(m.session.ID)
		m.finishBreak(now)

	case models.SessionLongBreak:
		if err := storage.EndLongBreak(m.store, m.session.ID, now); err != nil {
			return
		}
		m.reloadSession(m.session.ID)
		m.finishBreak(now)
	}
}

func (m *Model) finishBreak(now time.Time) {
	if m.preset != nil && m.preset.AutoStartNextSession {
		m.startSession(now)
		return
	}
	m.session = nil
}

func (m *Model) scheduleSessionNotifications(now time.Time) {
	if m.session == nil || m.preset == nil || !m.settings.ShowNotifications {
		return
	}
	m.cancelHandles()
	m.handles = m.scheduler.ScheduleSession(m.session, m.preset, m.settings.Notifications, now)
}

func (m *Model) cancelHandles() {
	m.scheduler.Cancel(m.handles)
	m.handles = nil
}
