package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fairwaylabs/swingsight/internal/analysis"
)

// Swing represents one recorded and analyzed swing.
type Swing struct {
	ID          string
	SessionID   string
	StartedAtMs int64
	FrameCount  int
	Phases      []analysis.Phase
	CreatedAt   time.Time
}

// SwingRepository provides CRUD operations for swings.
type SwingRepository struct {
	db *sql.DB
}

// Swings returns the swing repository for this store.
func (s *Store) Swings() *SwingRepository {
	return &SwingRepository{db: s.db}
}

// Create inserts a new swing into the database.
func (r *SwingRepository) Create(sw *Swing) error {
	sw.CreatedAt = time.Now()

	phases, err := json.Marshal(sw.Phases)
	if err != nil {
		return fmt.Errorf("marshal phases: %w", err)
	}

	_, err = r.db.Exec(
		`INSERT INTO swings (id, session_id, started_at_ms, frame_count, phases, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sw.ID, sw.SessionID, sw.StartedAtMs, sw.FrameCount, string(phases), sw.CreatedAt,
	)
	return err
}

// GetByID retrieves a swing by its ID.
func (r *SwingRepository) GetByID(id string) (*Swing, error) {
	sw := &Swing{}
	var phases string

	err := r.db.QueryRow(
		`SELECT id, session_id, started_at_ms, frame_count, phases, created_at
		 FROM swings WHERE id = ?`,
		id,
	).Scan(&sw.ID, &sw.SessionID, &sw.StartedAtMs, &sw.FrameCount, &phases, &sw.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(phases), &sw.Phases); err != nil {
		return nil, fmt.Errorf("unmarshal phases: %w", err)
	}

	return sw, nil
}

// ListBySession retrieves all swings of a session, oldest first.
func (r *SwingRepository) ListBySession(sessionID string) ([]*Swing, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, started_at_ms, frame_count, phases, created_at
		 FROM swings WHERE session_id = ? ORDER BY started_at_ms ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var swings []*Swing
	for rows.Next() {
		sw := &Swing{}
		var phases string
		if err := rows.Scan(&sw.ID, &sw.SessionID, &sw.StartedAtMs, &sw.FrameCount, &phases, &sw.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(phases), &sw.Phases); err != nil {
			return nil, fmt.Errorf("unmarshal phases: %w", err)
		}
		swings = append(swings, sw)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return swings, nil
}

// Delete removes a swing and its metrics.
func (r *SwingRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM swings WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
