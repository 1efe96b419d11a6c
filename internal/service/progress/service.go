// Package progress owns the persisted study progress: one rating record
// per card id plus the preferred synthesizer voice. State is loaded once
// at startup, served from memory, and written through to the repository
// on every mutation.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

type repository interface {
	Load(ctx context.Context) (domain.ProgressState, error)
	SaveRating(ctx context.Context, cardID string, rec domain.RatingRecord) error
	SaveVoice(ctx context.Context, voiceURI string) error
	Reset(ctx context.Context) error
}

// Service implements the progress business logic.
type Service struct {
	mu    sync.RWMutex
	log   *slog.Logger
	repo  repository
	state domain.ProgressState

	// nowFn supplies rating timestamps; replaced in tests.
	nowFn func() time.Time
}

// NewService creates a progress service with empty state. Call Load
// before serving.
func NewService(log *slog.Logger, repo repository) *Service {
	return &Service{
		log:   log.With("service", "progress"),
		repo:  repo,
		state: domain.NewProgressState(),
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// Load reads the persisted state into memory. A missing or unreadable
// document is not fatal: progress starts fresh and the failure is
// logged, matching how a corrupt local store is treated on the client
// side.
func (s *Service) Load(ctx context.Context) error {
	state, err := s.repo.Load(ctx)
	if err != nil {
		s.log.Warn("progress state unreadable, starting fresh", slog.Any("error", err))
		state = domain.NewProgressState()
	}
	if state.Ratings == nil {
		state.Ratings = make(map[string]domain.RatingRecord)
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.log.Info("progress loaded", slog.Int("ratings", len(state.Ratings)))
	return nil
}

// RecordRating stores a timestamped rating for the card, overwriting
// any previous record. The write is persisted before memory is updated,
// so a storage failure leaves the in-memory state untouched.
func (s *Service) RecordRating(ctx context.Context, cardID string, level domain.RatingLevel) (domain.RatingRecord, error) {
	if cardID == "" {
		return domain.RatingRecord{}, domain.NewValidationError("cardId", "required")
	}
	if !level.IsValid() {
		return domain.RatingRecord{}, domain.NewValidationError("level", "must be again, good, or easy")
	}

	rec := domain.RatingRecord{Level: level, At: s.nowFn()}

	if err := s.repo.SaveRating(ctx, cardID, rec); err != nil {
		return domain.RatingRecord{}, fmt.Errorf("save rating: %w", err)
	}

	s.mu.Lock()
	s.state.Ratings[cardID] = rec
	s.mu.Unlock()

	return rec, nil
}

// SetVoice persists the preferred synthesizer voice.
func (s *Service) SetVoice(ctx context.Context, voiceURI string) error {
	if err := s.repo.SaveVoice(ctx, voiceURI); err != nil {
		return fmt.Errorf("save voice: %w", err)
	}

	s.mu.Lock()
	s.state.VoiceURI = voiceURI
	s.mu.Unlock()

	s.log.Info("voice preference saved", slog.String("voice_uri", voiceURI))
	return nil
}

// ResetAll wipes every rating. The voice preference survives the reset.
func (s *Service) ResetAll(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}

	s.mu.Lock()
	s.state.Ratings = make(map[string]domain.RatingRecord)
	s.mu.Unlock()

	s.log.Info("progress reset")
	return nil
}

// Counts aggregates the in-memory ratings by level.
func (s *Service) Counts() domain.RatingCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Counts()
}

// VoiceURI returns the preferred synthesizer voice, or empty when none
// was ever chosen.
func (s *Service) VoiceURI() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.VoiceURI
}

// State returns a deep copy of the full progress document, as written
// to an export file.
func (s *Service) State() domain.ProgressState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}
