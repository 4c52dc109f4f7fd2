package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

// AppState is the single persisted snapshot: every entity collection plus
// settings, serialized as one JSON document. Instants serialize as RFC 3339
// strings and are re-parsed on load by encoding/json.
type AppState struct {
	Version    int                            `json:"version"`
	Settings   models.Settings                `json:"settings"`
	Tasks      map[string]models.Task         `json:"tasks"`
	Categories map[string]models.Category     `json:"categories"`
	Presets    map[string]models.TimerPreset  `json:"timer_presets"`
	Sessions   map[string]models.TimerSession `json:"timer_sessions"`
}

// JSONStore persists the AppState snapshot as a single JSON file under the
// config directory.
type JSONStore struct {
	path  string
	state *AppState
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.state = &AppState{
		Version:    1,
		Settings:   models.DefaultSettings(),
		Tasks:      make(map[string]models.Task),
		Categories: make(map[string]models.Category),
		Presets:    make(map[string]models.TimerPreset),
		Sessions:   make(map[string]models.TimerSession),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'flowdeck init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.state = &AppState{}
	if err := json.Unmarshal(data, s.state); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.state.Tasks == nil {
		s.state.Tasks = make(map[string]models.Task)
	}
	if s.state.Categories == nil {
		s.state.Categories = make(map[string]models.Category)
	}
	if s.state.Presets == nil {
		s.state.Presets = make(map[string]models.TimerPreset)
	}
	if s.state.Sessions == nil {
		s.state.Sessions = make(map[string]models.TimerSession)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save writes the snapshot to a temp file and renames it into place, so a
// crash mid-write never leaves a truncated document behind.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) loaded() error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.state.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Settings = settings
	return s.save()
}

func (s *JSONStore) AddTask(task models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if err := s.loaded(); err != nil {
		return models.Task{}, err
	}
	task, ok := s.state.Tasks[id]
	if !ok {
		return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return task, nil
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(s.state.Tasks))
	for _, task := range s.state.Tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Datetime.Before(tasks[j].Datetime)
	})
	return tasks, nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Tasks[task.ID]; !ok {
		return fmt.Errorf("task %s: %w", task.ID, ErrNotFound)
	}
	s.state.Tasks[task.ID] = task
	return s.save()
}

func (s *JSONStore) DeleteTask(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Tasks[id]; !ok {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	delete(s.state.Tasks, id)
	return s.save()
}

func (s *JSONStore) AddCategory(category models.Category) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Categories[category.ID] = category
	return s.save()
}

func (s *JSONStore) GetAllCategories() ([]models.Category, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	categories := make([]models.Category, 0, len(s.state.Categories))
	for _, category := range s.state.Categories {
		categories = append(categories, category)
	}
	models.SortCategories(categories)
	return categories, nil
}

func (s *JSONStore) UpdateCategory(category models.Category) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Categories[category.ID]; !ok {
		return fmt.Errorf("category %s: %w", category.ID, ErrNotFound)
	}
	s.state.Categories[category.ID] = category
	return s.save()
}

func (s *JSONStore) DeleteCategory(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Categories[id]; !ok {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	delete(s.state.Categories, id)
	return s.save()
}

func (s *JSONStore) AddPreset(preset models.TimerPreset) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Presets[preset.ID] = preset
	return s.save()
}

func (s *JSONStore) GetPreset(id string) (models.TimerPreset, error) {
	if err := s.loaded(); err != nil {
		return models.TimerPreset{}, err
	}
	preset, ok := s.state.Presets[id]
	if !ok {
		return models.TimerPreset{}, fmt.Errorf("preset %s: %w", id, ErrNotFound)
	}
	return preset, nil
}

func (s *JSONStore) GetAllPresets() ([]models.TimerPreset, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	presets := make([]models.TimerPreset, 0, len(s.state.Presets))
	for _, preset := range s.state.Presets {
		presets = append(presets, preset)
	}
	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})
	return presets, nil
}

func (s *JSONStore) UpdatePreset(preset models.TimerPreset) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Presets[preset.ID]; !ok {
		return fmt.Errorf("preset %s: %w", preset.ID, ErrNotFound)
	}
	s.state.Presets[preset.ID] = preset
	return s.save()
}

func (s *JSONStore) DeletePreset(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Presets[id]; !ok {
		return fmt.Errorf("preset %s: %w", id, ErrNotFound)
	}
	delete(s.state.Presets, id)
	return s.save()
}

func (s *JSONStore) AddSession(session models.TimerSession) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.state.Sessions[session.ID] = session
	return s.save()
}

func (s *JSONStore) GetSession(id string) (models.TimerSession, error) {
	if err := s.loaded(); err != nil {
		return models.TimerSession{}, err
	}
	session, ok := s.state.Sessions[id]
	if !ok {
		return models.TimerSession{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return session, nil
}

func (s *JSONStore) GetAllSessions() ([]models.TimerSession, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	sessions := make([]models.TimerSession, 0, len(s.state.Sessions))
	for _, session := range s.state.Sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *JSONStore) UpdateSession(session models.TimerSession) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Sessions[session.ID]; !ok {
		return fmt.Errorf("session %s: %w", session.ID, ErrNotFound)
	}
	s.state.Sessions[session.ID] = session
	return s.save()
}

func (s *JSONStore) DeleteSession(id string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if _, ok := s.state.Sessions[id]; !ok {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	delete(s.state.Sessions, id)
	return s.save()
}
