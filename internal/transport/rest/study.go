package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck/internal/service/study"
)

// studyService defines the minimal interface needed by StudyHandler.
type studyService interface {
	Current() study.Snapshot
	Flip() study.Snapshot
	Move(input study.MoveInput) (study.Snapshot, error)
	Rate(ctx context.Context, input study.RateInput) (study.Snapshot, error)
	Options() study.Options
	SetOptions(opts study.Options)
	Stats() study.Stats
}

// StudyHandler serves session REST endpoints.
type StudyHandler struct {
	svc studyService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc studyService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

// Get handles GET /api/session.
func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Current())
}

// Flip handles POST /api/session/flip.
func (h *StudyHandler) Flip(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Flip())
}

// Move handles POST /api/session/move.
func (h *StudyHandler) Move(w http.ResponseWriter, r *http.Request) {
	var input study.MoveInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Move(input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// Rate handles POST /api/session/rate.
func (h *StudyHandler) Rate(w http.ResponseWriter, r *http.Request) {
	var input study.RateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Rate(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}

// GetOptions handles GET /api/session/options.
func (h *StudyHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Options())
}

// SetOptions handles PUT /api/session/options. The rebuilt view is not
// returned: a filter edit may be debounced, so clients poll the session
// instead.
func (h *StudyHandler) SetOptions(w http.ResponseWriter, r *http.Request) {
	var opts study.Options
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.svc.SetOptions(opts)
	writeJSON(w, http.StatusOK, opts)
}

// Stats handles GET /api/stats.
func (h *StudyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}
