package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

type progressServiceMock struct {
	state    domain.ProgressState
	resetErr error
	resets   int
}

func (m *progressServiceMock) State() domain.ProgressState { return m.state }

func (m *progressServiceMock) ResetAll(_ context.Context) error {
	m.resets++
	return m.resetErr
}

func TestProgressHandler_Export(t *testing.T) {
	t.Parallel()

	svc := &progressServiceMock{state: domain.ProgressState{
		Ratings: map[string]domain.RatingRecord{
			"c_1a2b3c4d": {Level: domain.RatingGood, At: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)},
		},
		VoiceURI: "fr-FR-denise",
	}}
	h := NewProgressHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/progress/export", nil)
	rec := httptest.NewRecorder()

	h.Export(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	disp := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disp, "flashcards-progress.json") {
		t.Errorf("expected download filename in Content-Disposition, got %q", disp)
	}

	var state domain.ProgressState
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if state.VoiceURI != "fr-FR-denise" {
		t.Errorf("expected voiceURI in export, got %q", state.VoiceURI)
	}
	if state.Ratings["c_1a2b3c4d"].Level != domain.RatingGood {
		t.Errorf("unexpected ratings: %+v", state.Ratings)
	}
}

func TestProgressHandler_Reset(t *testing.T) {
	t.Parallel()

	svc := &progressServiceMock{}
	h := NewProgressHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/progress/reset", nil)
	rec := httptest.NewRecorder()

	h.Reset(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.resets != 1 {
		t.Errorf("expected 1 reset call, got %d", svc.resets)
	}
}

func TestProgressHandler_Reset_StorageError(t *testing.T) {
	t.Parallel()

	svc := &progressServiceMock{resetErr: errors.New("disk full")}
	h := NewProgressHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/progress/reset", nil)
	rec := httptest.NewRecorder()

	h.Reset(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}
