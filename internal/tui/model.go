package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/flowdeck-app/flowdeck/internal/constants"
	"github.com/flowdeck-app/flowdeck/internal/models"
	"github.com/flowdeck-app/flowdeck/internal/sched"
	"github.com/flowdeck-app/flowdeck/internal/storage"
	"github.com/flowdeck-app/flowdeck/internal/utils"
)

type taskItem struct {
	task models.Task
}

func (i taskItem) Title() string {
	title := i.task.Title
	if i.task.IsCompleted {
		title = "✓ " + title
	} else {
		title = "○ " + title
	}
	return title
}

func (i taskItem) Description() string {
	desc := "due " + utils.FormatDateTime(i.task.Datetime)
	if i.task.IsOverdue(time.Now()) {
		desc = "OVERDUE " + desc
	}
	if i.task.IsRecurring && i.task.Recurring != nil {
		desc += " · repeats " + string(i.task.Recurring.Type)
	}
	return desc
}

func (i taskItem) FilterValue() string { return i.task.Title }

type PauseFormModel struct {
	Reason string
}

type Model struct {
	store     storage.Provider
	scheduler *sched.Scheduler
	settings  models.Settings

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	// Timer view
	session      *models.TimerSession
	preset       *models.TimerPreset
	presets      []models.TimerPreset
	presetIndex  int
	longBreakDue bool
	now          time.Time
	progress     progress.Model
	handles      []*sched.Handle

	// Tasks view
	taskList       list.Model
	taskToDeleteID string

	// Rules view
	rules []models.NotificationRule

	form      *huh.Form
	pauseForm *PauseFormModel

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, scheduler *sched.Scheduler) Model {
	settings, _ := store.GetSettings()
	presets, _ := store.GetAllPresets()

	tasks, err := store.GetAllTasks()
	if err != nil {
		tasks = []models.Task{}
	}
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, taskItem{task: task})
	}
	taskList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	taskList.Title = "Tasks"
	taskList.SetShowHelp(false)

	m := Model{
		store:     store,
		scheduler: scheduler,
		settings:  settings,
		state:     constants.StateTimer,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		presets:   presets,
		now:       time.Now(),
		progress:  progress.New(progress.WithDefaultGradient()),
		taskList:  taskList,
		rules:     settings.Notifications.Rules,
	}

	if len(presets) > 0 {
		m.preset = &presets[0]
	}

	return m
}

// Run starts the interactive session and blocks until the user quits.
func Run(store storage.Provider, scheduler *sched.Scheduler) error {
	p := tea.NewProgram(NewModel(store, scheduler), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case constants.StateTimer:
		keys = append(keys, m.keys.Toggle, m.keys.Stop, m.keys.Preset)
	case constants.StateTasks:
		keys = append(keys, m.keys.Complete, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case constants.StateTimer:
		actions = []key.Binding{m.keys.Toggle, m.keys.Stop, m.keys.Preset}
	case constants.StateTasks:
		actions = []key.Binding{m.keys.Complete, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) reloadTasks() {
	tasks, err := m.store.GetAllTasks()
	if err != nil {
		return
	}
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
}

func (m *Model) reloadSession(id string) {
	session, err := m.store.GetSession(id)
	if err != nil {
		m.session = nil
		return
	}
	m.session = &session
}

func newPauseForm(model *PauseFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pause reason").
				Description("Optional note for the interruption log").
				Value(&model.Reason),
		),
	)
}
