package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fairwaylabs/swingsight/internal/analysis"
)

// testStore creates a store backed by a throwaway database file.
func testStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Verify the database file doesn't exist yet
	if _, err := os.Stat(dbPath); !os.IsNotExist(err) {
		t.Fatal("database file should not exist before creating store")
	}

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer s.Close()

	// Verify the database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file should exist after creating store")
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	s := testStore(t)

	tables := []string{"sessions", "swings", "swing_metrics"}
	for _, table := range tables {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
			table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %q should exist after migrations: %v", table, err)
		}
	}
}

func TestSessionRepository_CRUD(t *testing.T) {
	s := testStore(t)
	repo := s.Sessions()

	sess := &Session{ID: "sess-1", Name: "morning range", Club: "7-iron"}
	if err := repo.Create(sess); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if sess.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set on create")
	}

	got, err := repo.GetByID("sess-1")
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if got.Name != "morning range" || got.Club != "7-iron" {
		t.Errorf("unexpected session: %+v", got)
	}

	got.Name = "evening range"
	if err := repo.Update(got); err != nil {
		t.Fatalf("failed to update session: %v", err)
	}
	got, err = repo.GetByID("sess-1")
	if err != nil {
		t.Fatalf("failed to get updated session: %v", err)
	}
	if got.Name != "evening range" {
		t.Errorf("expected updated name, got %q", got.Name)
	}

	if err := repo.Delete("sess-1"); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}
	if _, err := repo.GetByID("sess-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestSessionRepository_NotFound(t *testing.T) {
	s := testStore(t)
	repo := s.Sessions()

	if _, err := repo.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("get: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(&Session{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("update: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete: expected ErrNotFound, got %v", err)
	}
}

func TestSessionRepository_ListNewestFirst(t *testing.T) {
	s := testStore(t)
	repo := s.Sessions()

	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Create(&Session{ID: id, Name: id}); err != nil {
			t.Fatalf("failed to create session %q: %v", id, err)
		}
	}

	sessions, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
}

func TestSwingRepository_RoundTrip(t *testing.T) {
	s := testStore(t)
	if err := s.Sessions().Create(&Session{ID: "sess-1", Name: "range"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	phases := []analysis.Phase{
		analysis.PhaseSetup,
		analysis.PhaseBackswing,
		analysis.PhaseDownswing,
		analysis.PhaseImpact,
	}
	sw := &Swing{
		ID:          "swing-1",
		SessionID:   "sess-1",
		StartedAtMs: 5000,
		FrameCount:  42,
		Phases:      phases,
	}
	if err := s.Swings().Create(sw); err != nil {
		t.Fatalf("failed to create swing: %v", err)
	}

	got, err := s.Swings().GetByID("swing-1")
	if err != nil {
		t.Fatalf("failed to get swing: %v", err)
	}
	if got.SessionID != "sess-1" || got.FrameCount != 42 || got.StartedAtMs != 5000 {
		t.Errorf("unexpected swing: %+v", got)
	}
	if len(got.Phases) != len(phases) {
		t.Fatalf("expected %d phases, got %d", len(phases), len(got.Phases))
	}
	for i, p := range phases {
		if got.Phases[i] != p {
			t.Errorf("phase %d: expected %s, got %s", i, p, got.Phases[i])
		}
	}
}

func TestSwingRepository_ListBySessionOldestFirst(t *testing.T) {
	s := testStore(t)
	if err := s.Sessions().Create(&Session{ID: "sess-1", Name: "range"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	for i, id := range []string{"late", "early", "middle"} {
		starts := []int64{3000, 1000, 2000}
		sw := &Swing{ID: id, SessionID: "sess-1", StartedAtMs: starts[i]}
		if err := s.Swings().Create(sw); err != nil {
			t.Fatalf("failed to create swing %q: %v", id, err)
		}
	}

	swings, err := s.Swings().ListBySession("sess-1")
	if err != nil {
		t.Fatalf("failed to list swings: %v", err)
	}
	want := []string{"early", "middle", "late"}
	if len(swings) != len(want) {
		t.Fatalf("expected %d swings, got %d", len(want), len(swings))
	}
	for i, id := range want {
		if swings[i].ID != id {
			t.Errorf("swing %d: expected %q, got %q", i, id, swings[i].ID)
		}
	}
}

func TestMetricsRepository_RoundTrip(t *testing.T) {
	s := testStore(t)
	if err := s.Sessions().Create(&Session{ID: "sess-1", Name: "range"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := s.Swings().Create(&Swing{ID: "swing-1", SessionID: "sess-1"}); err != nil {
		t.Fatalf("failed to create swing: %v", err)
	}

	m := analysis.SwingMetrics{
		TimestampMs:    1000,
		XFactor:        42.5,
		XFactorStretch: 51.0,
	}
	m.Sequence.Efficiency = 0.75
	m.Power.PeakPower = 1800
	m.Timing.TempoRatio = 3.1

	if err := s.Metrics().Create("swing-1", m); err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	metrics, err := s.Metrics().ListBySwing("swing-1")
	if err != nil {
		t.Fatalf("failed to list metrics: %v", err)
	}
	if len(metrics) != 1 {
		t.Fatalf("expected 1 metric snapshot, got %d", len(metrics))
	}
	got := metrics[0]
	if got.XFactor != 42.5 || got.XFactorStretch != 51.0 {
		t.Errorf("unexpected X-Factor values: %+v", got)
	}
	if got.Sequence.Efficiency != 0.75 || got.Power.PeakPower != 1800 {
		t.Errorf("unexpected nested values: %+v", got)
	}
	if got.Timing.TempoRatio != 3.1 {
		t.Errorf("expected tempo ratio 3.1, got %f", got.Timing.TempoRatio)
	}
}

func TestMetricsRepository_RecentChronological(t *testing.T) {
	s := testStore(t)
	if err := s.Sessions().Create(&Session{ID: "sess-1", Name: "range"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := s.Swings().Create(&Swing{ID: "swing-1", SessionID: "sess-1"}); err != nil {
		t.Fatalf("failed to create swing: %v", err)
	}

	for i := int64(1); i <= 5; i++ {
		m := analysis.SwingMetrics{TimestampMs: i * 1000, XFactor: float64(i)}
		if err := s.Metrics().Create("swing-1", m); err != nil {
			t.Fatalf("failed to create metrics %d: %v", i, err)
		}
	}

	// Ask for the latest 3: timestamps 3000..5000, oldest first.
	metrics, err := s.Metrics().Recent("sess-1", 3)
	if err != nil {
		t.Fatalf("failed to query recent metrics: %v", err)
	}
	if len(metrics) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(metrics))
	}
	for i, want := range []int64{3000, 4000, 5000} {
		if metrics[i].TimestampMs != want {
			t.Errorf("snapshot %d: expected timestamp %d, got %d", i, want, metrics[i].TimestampMs)
		}
	}
}

func TestSessionDelete_CascadesToSwingsAndMetrics(t *testing.T) {
	s := testStore(t)
	if err := s.Sessions().Create(&Session{ID: "sess-1", Name: "range"}); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if err := s.Swings().Create(&Swing{ID: "swing-1", SessionID: "sess-1"}); err != nil {
		t.Fatalf("failed to create swing: %v", err)
	}
	if err := s.Metrics().Create("swing-1", analysis.SwingMetrics{TimestampMs: 1}); err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	if err := s.Sessions().Delete("sess-1"); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	if _, err := s.Swings().GetByID("swing-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected swing removed by cascade, got %v", err)
	}
	metrics, err := s.Metrics().ListBySwing("swing-1")
	if err != nil {
		t.Fatalf("failed to list metrics after cascade: %v", err)
	}
	if len(metrics) != 0 {
		t.Errorf("expected no metrics after cascade, got %d", len(metrics))
	}
}
