package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// voiceLister defines the minimal engine interface needed by SpeechHandler.
type voiceLister interface {
	Voices(ctx context.Context) ([]domain.Voice, error)
}

// voiceSaver persists the preferred voice.
type voiceSaver interface {
	SetVoice(ctx context.Context, voiceURI string) error
	VoiceURI() string
}

// speaker speaks the currently visible card side.
type speaker interface {
	SpeakVisible() error
}

// SpeechHandler serves text-to-speech endpoints.
type SpeechHandler struct {
	engine   voiceLister
	progress voiceSaver
	study    speaker
	log      *slog.Logger
}

// NewSpeechHandler creates a SpeechHandler.
func NewSpeechHandler(engine voiceLister, progress voiceSaver, study speaker, logger *slog.Logger) *SpeechHandler {
	return &SpeechHandler{
		engine:   engine,
		progress: progress,
		study:    study,
		log:      logger.With("handler", "speech"),
	}
}

type voicesResponse struct {
	Voices   []domain.Voice `json:"voices"`
	Selected string         `json:"selected"`
}

type setVoiceRequest struct {
	VoiceURI string `json:"voiceUri"`
}

// Voices handles GET /api/speech/voices.
func (h *SpeechHandler) Voices(w http.ResponseWriter, r *http.Request) {
	voices, err := h.engine.Voices(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, voicesResponse{
		Voices:   voices,
		Selected: h.progress.VoiceURI(),
	})
}

// SetVoice handles PUT /api/speech/voice.
func (h *SpeechHandler) SetVoice(w http.ResponseWriter, r *http.Request) {
	var req setVoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.progress.SetVoice(r.Context(), req.VoiceURI); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"voiceUri": req.VoiceURI})
}

// Speak handles POST /api/speech/speak, speaking the visible side of
// the current card.
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	if err := h.study.SpeakVisible(); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
