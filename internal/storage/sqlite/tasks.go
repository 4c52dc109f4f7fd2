package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

func (s *Store) AddTask(task models.Task) error {
	return s.writeTask(task)
}

func (s *Store) UpdateTask(task models.Task) error {
	return s.writeTask(task)
}

func (s *Store) writeTask(task models.Task) error {
	var pattern sql.NullString
	if task.Recurring != nil {
		data, err := json.Marshal(task.Recurring)
		if err != nil {
			return fmt.Errorf("failed to serialize recurring pattern: %w", err)
		}
		pattern = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, datetime, category, priority, is_completed, is_recurring, recurring_pattern)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			datetime = excluded.datetime,
			category = excluded.category,
			priority = excluded.priority,
			is_completed = excluded.is_completed,
			is_recurring = excluded.is_recurring,
			recurring_pattern = excluded.recurring_pattern`,
		task.ID, task.Title, task.Description, task.Datetime.Format(time.RFC3339Nano),
		task.Category, string(task.Priority), task.IsCompleted, task.IsRecurring, pattern)
	if err != nil {
		return fmt.Errorf("failed to write task: %w", err)
	}
	return nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, datetime, category, priority, is_completed, is_recurring, recurring_pattern
		FROM tasks WHERE id = ?`, id)

	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return models.Task{}, fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return task, err
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, datetime, category, priority, is_completed, is_recurring, recurring_pattern
		FROM tasks ORDER BY datetime`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *Store) DeleteTask(id string) error {
	result, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var datetime, priority string
	var pattern sql.NullString

	err := row.Scan(&t.ID, &t.Title, &t.Description, &datetime, &t.Category,
		&priority, &t.IsCompleted, &t.IsRecurring, &pattern)
	if err != nil {
		return models.Task{}, err
	}

	t.Priority = models.Priority(priority)
	t.Datetime, err = time.Parse(time.RFC3339Nano, datetime)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse task datetime: %w", err)
	}

	if pattern.Valid && pattern.String != "" {
		t.Recurring = &models.RecurringPattern{}
		if err := json.Unmarshal([]byte(pattern.String), t.Recurring); err != nil {
			return models.Task{}, fmt.Errorf("failed to parse recurring pattern: %w", err)
		}
	}

	return t, nil
}
