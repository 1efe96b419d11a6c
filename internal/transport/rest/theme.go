package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// themeStore defines the minimal interface needed by ThemeHandler.
type themeStore interface {
	Theme(ctx context.Context) domain.Theme
	SetTheme(ctx context.Context, theme domain.Theme) error
	Toggle(ctx context.Context) (domain.Theme, error)
}

// ThemeHandler serves theme preference endpoints.
type ThemeHandler struct {
	store themeStore
	log   *slog.Logger
}

// NewThemeHandler creates a ThemeHandler.
func NewThemeHandler(store themeStore, logger *slog.Logger) *ThemeHandler {
	return &ThemeHandler{store: store, log: logger.With("handler", "theme")}
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}

// Get handles GET /api/theme.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themeResponse{Theme: h.store.Theme(r.Context())})
}

// Set handles PUT /api/theme.
func (h *ThemeHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req themeResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.store.SetTheme(r.Context(), req.Theme); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: req.Theme})
}

// Toggle handles POST /api/theme/toggle.
func (h *ThemeHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	theme, err := h.store.Toggle(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, themeResponse{Theme: theme})
}
