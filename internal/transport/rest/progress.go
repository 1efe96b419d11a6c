package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// exportFilename matches the historical export name so re-imports of
// old files keep working.
const exportFilename = "flashcards-progress.json"

// progressService defines the minimal interface needed by ProgressHandler.
type progressService interface {
	State() domain.ProgressState
	ResetAll(ctx context.Context) error
}

// ProgressHandler serves progress export and reset endpoints.
type ProgressHandler struct {
	svc progressService
	log *slog.Logger
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(svc progressService, logger *slog.Logger) *ProgressHandler {
	return &ProgressHandler{svc: svc, log: logger.With("handler", "progress")}
}

// Export handles GET /api/progress/export, serving the progress
// document as a downloadable JSON file.
func (h *ProgressHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFilename+`"`)
	w.WriteHeader(http.StatusOK)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(h.svc.State()) //nolint:errcheck
}

// Reset handles POST /api/progress/reset.
func (h *ProgressHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetAll(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
