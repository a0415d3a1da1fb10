package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fairwaylabs/swingsight/internal/analysis"
	"github.com/fairwaylabs/swingsight/internal/store"
)

// SwingHandler handles HTTP requests for swing resources.
type SwingHandler struct {
	store *store.Store
}

// NewSwingHandler creates a new SwingHandler with the given store.
func NewSwingHandler(s *store.Store) *SwingHandler {
	return &SwingHandler{store: s}
}

// ServeHTTP routes swing requests.
func (h *SwingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/swings/{id}, /api/swings/{id}/metrics
	path := strings.TrimPrefix(r.URL.Path, "/api/swings")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if id, ok := strings.CutSuffix(path, "/metrics"); ok {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.metrics(w, r, id)
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type swingResponse struct {
	ID          string           `json:"id"`
	SessionID   string           `json:"session_id"`
	StartedAtMs int64            `json:"started_at_ms"`
	FrameCount  int              `json:"frame_count"`
	Phases      []analysis.Phase `json:"phases"`
	CreatedAt   string           `json:"created_at"`
}

type listSwingsResponse struct {
	Swings []swingResponse `json:"swings"`
}

type swingMetricsResponse struct {
	Metrics []analysis.SwingMetrics `json:"metrics"`
}

func toSwingResponse(sw *store.Swing) swingResponse {
	return swingResponse{
		ID:          sw.ID,
		SessionID:   sw.SessionID,
		StartedAtMs: sw.StartedAtMs,
		FrameCount:  sw.FrameCount,
		Phases:      sw.Phases,
		CreatedAt:   sw.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (h *SwingHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	sw, err := h.store.Swings().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "swing not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get swing")
		return
	}

	writeJSON(w, http.StatusOK, toSwingResponse(sw))
}

func (h *SwingHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Swings().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "swing not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete swing")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *SwingHandler) metrics(w http.ResponseWriter, r *http.Request, id string) {
	if _, err := h.store.Swings().GetByID(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "swing not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get swing")
		return
	}

	metrics, err := h.store.Metrics().ListBySwing(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list metrics")
		return
	}

	if metrics == nil {
		metrics = []analysis.SwingMetrics{}
	}
	writeJSON(w, http.StatusOK, swingMetricsResponse{Metrics: metrics})
}
