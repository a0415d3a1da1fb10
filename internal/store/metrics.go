package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/fairwaylabs/swingsight/internal/analysis"
)

// MetricsRepository persists computed swing metrics. Headline numbers go
// into columns for querying; the full snapshot travels as a JSON payload so
// nothing computed is lost.
type MetricsRepository struct {
	db *sql.DB
}

// Metrics returns the metrics repository for this store.
func (s *Store) Metrics() *MetricsRepository {
	return &MetricsRepository{db: s.db}
}

// Create stores a metric snapshot for a swing.
func (r *MetricsRepository) Create(swingID string, m analysis.SwingMetrics) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}

	optimal := 0
	if m.Sequence.Optimal {
		optimal = 1
	}

	_, err = r.db.Exec(
		`INSERT INTO swing_metrics
		 (swing_id, recorded_at_ms, x_factor, x_factor_stretch, sequence_efficiency,
		  optimal_sequence, peak_power, tempo_ratio, overall_consistency, payload)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		swingID, m.TimestampMs, m.XFactor, m.XFactorStretch, m.Sequence.Efficiency,
		optimal, m.Power.PeakPower, m.Timing.TempoRatio, m.Consistency.Overall, string(payload),
	)
	return err
}

// ListBySwing retrieves all metric snapshots of a swing, oldest first.
func (r *MetricsRepository) ListBySwing(swingID string) ([]analysis.SwingMetrics, error) {
	rows, err := r.db.Query(
		`SELECT payload FROM swing_metrics WHERE swing_id = ? ORDER BY recorded_at_ms ASC`,
		swingID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMetrics(rows)
}

// Recent retrieves the latest n metric snapshots of a session, oldest first,
// for seeding consistency analysis across process restarts.
func (r *MetricsRepository) Recent(sessionID string, n int) ([]analysis.SwingMetrics, error) {
	rows, err := r.db.Query(
		`SELECT m.payload FROM swing_metrics m
		 JOIN swings s ON s.id = m.swing_id
		 WHERE s.session_id = ?
		 ORDER BY m.recorded_at_ms DESC LIMIT ?`,
		sessionID, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metrics, err := scanMetrics(rows)
	if err != nil {
		return nil, err
	}

	// Query is newest-first; flip to chronological order.
	for i, j := 0, len(metrics)-1; i < j; i, j = i+1, j-1 {
		metrics[i], metrics[j] = metrics[j], metrics[i]
	}
	return metrics, nil
}

func scanMetrics(rows *sql.Rows) ([]analysis.SwingMetrics, error) {
	var metrics []analysis.SwingMetrics
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}

		var m analysis.SwingMetrics
		if err := json.Unmarshal([]byte(payload), &m); err != nil {
			return nil, fmt.Errorf("unmarshal metrics: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metrics, nil
}
