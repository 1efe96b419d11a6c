package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/flashdeck/internal/domain"
	"github.com/heartmarshall/flashdeck/internal/service/study"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type studyServiceMock struct {
	snap    study.Snapshot
	stats   study.Stats
	opts    study.Options
	moveErr error
	rateErr error

	lastMove    *study.MoveInput
	lastRate    *study.RateInput
	lastOptions *study.Options
}

func (m *studyServiceMock) Current() study.Snapshot { return m.snap }
func (m *studyServiceMock) Flip() study.Snapshot    { return m.snap }

func (m *studyServiceMock) Move(input study.MoveInput) (study.Snapshot, error) {
	m.lastMove = &input
	if m.moveErr != nil {
		return study.Snapshot{}, m.moveErr
	}
	return m.snap, nil
}

func (m *studyServiceMock) Rate(_ context.Context, input study.RateInput) (study.Snapshot, error) {
	m.lastRate = &input
	if m.rateErr != nil {
		return study.Snapshot{}, m.rateErr
	}
	return m.snap, nil
}

func (m *studyServiceMock) Options() study.Options { return m.opts }

func (m *studyServiceMock) SetOptions(opts study.Options) { m.lastOptions = &opts }

func (m *studyServiceMock) Stats() study.Stats { return m.stats }

func browsingSnapshot() study.Snapshot {
	return study.Snapshot{
		State:    domain.SessionBrowsing,
		DeckName: "test.csv",
		DeckSize: 2,
		ViewSize: 2,
		Face:     domain.FaceFront,
		Card: &study.CardView{
			ID:        "c_1a2b3c4d",
			FrontText: "chat",
			Back:      "cat",
		},
	}
}

func TestStudyHandler_Get(t *testing.T) {
	t.Parallel()

	svc := &studyServiceMock{snap: browsingSnapshot()}
	h := NewStudyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var snap study.Snapshot
	if err := json.NewDecoder(rec.Body).Decode(&snap); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if snap.State != domain.SessionBrowsing {
		t.Errorf("expected browsing state, got %q", snap.State)
	}
	if snap.Card == nil || snap.Card.FrontText != "chat" {
		t.Errorf("unexpected card: %+v", snap.Card)
	}
}

func TestStudyHandler_Move(t *testing.T) {
	t.Parallel()

	svc := &studyServiceMock{snap: browsingSnapshot()}
	h := NewStudyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/session/move", strings.NewReader(`{"direction":-1}`))
	rec := httptest.NewRecorder()

	h.Move(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.lastMove == nil || svc.lastMove.Direction != -1 {
		t.Errorf("expected direction -1 passed to service, got %+v", svc.lastMove)
	}
}

func TestStudyHandler_Move_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewStudyHandler(&studyServiceMock{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/session/move", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.Move(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestStudyHandler_Move_ValidationError(t *testing.T) {
	t.Parallel()

	svc := &studyServiceMock{moveErr: domain.NewValidationError("direction", "must be -1 or 1")}
	h := NewStudyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/session/move", strings.NewReader(`{"direction":5}`))
	rec := httptest.NewRecorder()

	h.Move(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestStudyHandler_Rate(t *testing.T) {
	t.Parallel()

	svc := &studyServiceMock{snap: browsingSnapshot()}
	h := NewStudyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/session/rate", strings.NewReader(`{"level":"good"}`))
	rec := httptest.NewRecorder()

	h.Rate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.lastRate == nil || svc.lastRate.Level != domain.RatingGood {
		t.Errorf("expected level 'good' passed to service, got %+v", svc.lastRate)
	}
}

func TestStudyHandler_Rate_NoDeckIs409(t *testing.T) {
	t.Parallel()

	svc := &studyServiceMock{rateErr: domain.ErrNoDeck}
	h := NewStudyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/session/rate", strings.NewReader(`{"level":"good"}`))
	rec := httptest.NewRecorder()

	h.Rate(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestStudyHandler_SetOptions(t *testing.T) {
	t.Parallel()

	svc := &studyServiceMock{}
	h := NewStudyHandler(svc, testLogger())

	body := `{"filterTag":"animals","shuffle":true,"preferExample":false,"autoSpeak":true}`
	req := httptest.NewRequest(http.MethodPut, "/api/session/options", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SetOptions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if svc.lastOptions == nil {
		t.Fatal("expected options passed to service")
	}
	if svc.lastOptions.FilterTag != "animals" || !svc.lastOptions.Shuffle || !svc.lastOptions.AutoSpeak {
		t.Errorf("unexpected options: %+v", svc.lastOptions)
	}
}

func TestStudyHandler_Stats(t *testing.T) {
	t.Parallel()

	svc := &studyServiceMock{stats: study.Stats{
		DeckLoaded: true,
		DeckName:   "test.csv",
		DeckSize:   10,
		ViewSize:   4,
		Rated:      3,
		Good:       2,
		Easy:       1,
	}}
	h := NewStudyHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()

	h.Stats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var stats study.Stats
	if err := json.NewDecoder(rec.Body).Decode(&stats); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if stats.DeckSize != 10 || stats.ViewSize != 4 || stats.Rated != 3 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
