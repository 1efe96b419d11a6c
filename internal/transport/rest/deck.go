package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck/internal/service/study"
)

// deckService defines the minimal interface needed by DeckHandler.
type deckService interface {
	ImportDeck(ctx context.Context, input study.ImportInput) (study.Snapshot, error)
	LoadSample(ctx context.Context) (study.Snapshot, error)
}

// DeckHandler serves deck import endpoints.
type DeckHandler struct {
	svc      deckService
	maxBytes int64
	log      *slog.Logger
}

// NewDeckHandler creates a DeckHandler. maxBytes caps the accepted CSV
// body size.
func NewDeckHandler(svc deckService, maxBytes int64, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "deck")}
}

// Import handles POST /api/deck. The body is the raw CSV text; the
// deck name comes from the X-Deck-Name header when set.
func (h *DeckHandler) Import(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "import too large")
		return
	}

	name := r.Header.Get("X-Deck-Name")
	if name == "" {
		name = "imported.csv"
	}

	snap, err := h.svc.ImportDeck(r.Context(), study.ImportInput{
		Text: string(body),
		Name: name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, snap)
}

// Sample handles POST /api/deck/sample.
func (h *DeckHandler) Sample(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.LoadSample(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, snap)
}
