package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flowdeck-app/flowdeck/internal/models"
)

func (s *Store) AddPreset(preset models.TimerPreset) error {
	return s.writePreset(preset)
}

func (s *Store) UpdatePreset(preset models.TimerPreset) error {
	return s.writePreset(preset)
}

func (s *Store) writePreset(preset models.TimerPreset) error {
	_, err := s.db.Exec(`
		INSERT INTO timer_presets (id, name, duration, break_duration, long_break_duration,
			auto_start_break, auto_start_next_session, sessions_until_long_break, color)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			duration = excluded.duration,
			break_duration = excluded.break_duration,
			long_break_duration = excluded.long_break_duration,
			auto_start_break = excluded.auto_start_break,
			auto_start_next_session = excluded.auto_start_next_session,
			sessions_until_long_break = excluded.sessions_until_long_break,
			color = excluded.color`,
		preset.ID, preset.Name, preset.Duration, preset.BreakDuration, preset.LongBreakDuration,
		preset.AutoStartBreak, preset.AutoStartNextSession, preset.SessionsUntilLongBreak, preset.Color)
	if err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}

func (s *Store) GetPreset(id string) (models.TimerPreset, error) {
	row := s.db.QueryRow(`
		SELECT id, name, duration, break_duration, long_break_duration,
			auto_start_break, auto_start_next_session, sessions_until_long_break, color
		FROM timer_presets WHERE id = ?`, id)

	var p models.TimerPreset
	err := row.Scan(&p.ID, &p.Name, &p.Duration, &p.BreakDuration, &p.LongBreakDuration,
		&p.AutoStartBreak, &p.AutoStartNextSession, &p.SessionsUntilLongBreak, &p.Color)
	if err == sql.ErrNoRows {
		return models.TimerPreset{}, fmt.Errorf("preset %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (s *Store) GetAllPresets() ([]models.TimerPreset, error) {
	rows, err := s.db.Query(`
		SELECT id, name, duration, break_duration, long_break_duration,
			auto_start_break, auto_start_next_session, sessions_until_long_break, color
		FROM timer_presets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var presets []models.TimerPreset
	for rows.Next() {
		var p models.TimerPreset
		if err := rows.Scan(&p.ID, &p.Name, &p.Duration, &p.BreakDuration, &p.LongBreakDuration,
			&p.AutoStartBreak, &p.AutoStartNextSession, &p.SessionsUntilLongBreak, &p.Color); err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (s *Store) DeletePreset(id string) error {
	result, err := s.db.Exec(`DELETE FROM timer_presets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("preset %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *Store) AddSession(session models.TimerSession) error {
	return s.writeSession(session)
}

func (s *Store) UpdateSession(session models.TimerSession) error {
	return s.writeSession(session)
}

func (s *Store) writeSession(session models.TimerSession) error {
	interruptions, err := json.Marshal(session.Interruptions)
	if err != nil {
		return fmt.Errorf("failed to serialize interruptions: %w", err)
	}

	var endTime sql.NullString
	if !session.EndTime.IsZero() {
		endTime = sql.NullString{String: session.EndTime.Format(time.RFC3339Nano), Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO timer_sessions (id, preset_id, start_time, end_time, duration, completed, type, session_count, interruptions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			preset_id = excluded.preset_id,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			duration = excluded.duration,
			completed = excluded.completed,
			type = excluded.type,
			session_count = excluded.session_count,
			interruptions = excluded.interruptions`,
		session.ID, session.PresetID, session.StartTime.Format(time.RFC3339Nano), endTime,
		session.Duration, session.Completed, string(session.Type), session.SessionCount, string(interruptions))
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *Store) GetSession(id string) (models.TimerSession, error) {
	row := s.db.QueryRow(`
		SELECT id, preset_id, start_time, end_time, duration, completed, type, session_count, interruptions
		FROM timer_sessions WHERE id = ?`, id)

	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return models.TimerSession{}, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return session, err
}

func (s *Store) GetAllSessions() ([]models.TimerSession, error) {
	rows, err := s.db.Query(`
		SELECT id, preset_id, start_time, end_time, duration, completed, type, session_count, interruptions
		FROM timer_sessions ORDER BY start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.TimerSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

func (s *Store) DeleteSession(id string) error {
	result, err := s.db.Exec(`DELETE FROM timer_sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanSession(row rowScanner) (models.TimerSession, error) {
	var sess models.TimerSession
	var startTime, sessionType, interruptions string
	var endTime sql.NullString

	err := row.Scan(&sess.ID, &sess.PresetID, &startTime, &endTime, &sess.Duration,
		&sess.Completed, &sessionType, &sess.SessionCount, &interruptions)
	if err != nil {
		return models.TimerSession{}, err
	}

	sess.Type = models.SessionType(sessionType)
	sess.StartTime, err = time.Parse(time.RFC3339Nano, startTime)
	if err != nil {
		return models.TimerSession{}, fmt.Errorf("failed to parse session start time: %w", err)
	}
	if endTime.Valid {
		sess.EndTime, err = time.Parse(time.RFC3339Nano, endTime.String)
		if err != nil {
			return models.TimerSession{}, fmt.Errorf("failed to parse session end time: %w", err)
		}
	}

	if err := json.Unmarshal([]byte(interruptions), &sess.Interruptions); err != nil {
		return models.TimerSession{}, fmt.Errorf("failed to parse interruptions: %w", err)
	}

	return sess, nil
}
