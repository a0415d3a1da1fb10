package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Sessions table - one practice session per row
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			club TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Swings table - one analyzed swing per row
		`CREATE TABLE IF NOT EXISTS swings (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			started_at_ms INTEGER NOT NULL,
			frame_count INTEGER NOT NULL DEFAULT 0,
			phases TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Swing metrics table - headline numbers as columns for querying,
		// full snapshot as JSON payload
		`CREATE TABLE IF NOT EXISTS swing_metrics (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			swing_id TEXT NOT NULL REFERENCES swings(id) ON DELETE CASCADE,
			recorded_at_ms INTEGER NOT NULL,
			x_factor REAL NOT NULL,
			x_factor_stretch REAL NOT NULL,
			sequence_efficiency REAL NOT NULL,
			optimal_sequence INTEGER NOT NULL DEFAULT 0,
			peak_power REAL NOT NULL,
			tempo_ratio REAL NOT NULL,
			overall_consistency REAL NOT NULL,
			payload TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_swings_session_id ON swings(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_swing_metrics_swing_id ON swing_metrics(swing_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
