// Package study owns the in-memory study state: the loaded deck, the
// derived view, and the session position. All mutation funnels through
// named transition operations guarded by one mutex, so every callback
// runs to completion serialized, the same guarantee the browser event
// loop gives a single-page app.
package study

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressStore interface {
	RecordRating(ctx context.Context, cardID string, level domain.RatingLevel) (domain.RatingRecord, error)
	Counts() domain.RatingCounts
	VoiceURI() string
}

type speechEngine interface {
	Available() bool
	Speak(text, voiceURI string)
}

type sampleFetcher interface {
	Fetch(ctx context.Context) (text string, name string, err error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Options are the view-shaping switches owned by the user.
type Options struct {
	FilterTag     string `json:"filterTag"`
	Shuffle       bool   `json:"shuffle"`
	PreferExample bool   `json:"preferExample"`
	AutoSpeak     bool   `json:"autoSpeak"`
}

// session is the machine state: position into the view plus the shown
// face. Rebuilt, never resumed, on every deck or view change.
type session struct {
	id       uuid.UUID
	position int
	face     domain.CardFace
}

// Service implements the study business logic.
type Service struct {
	mu       sync.Mutex
	log      *slog.Logger
	progress progressStore
	speech   speechEngine
	samples  sampleFetcher
	debounce time.Duration

	deck     *domain.Deck
	view     []int
	sess     session
	opts     Options
	browsing bool

	filterTimer *time.Timer

	// shuffleFn permutes [0,n) via swap; replaced in tests for
	// deterministic orderings.
	shuffleFn func(n int, swap func(i, j int))
}

// NewService creates a study service with an empty deck.
func NewService(log *slog.Logger, progress progressStore, speech speechEngine, samples sampleFetcher, debounce time.Duration) *Service {
	return &Service{
		log:       log.With("service", "study"),
		progress:  progress,
		speech:    speech,
		samples:   samples,
		debounce:  debounce,
		shuffleFn: rand.Shuffle,
	}
}

// Close releases the pending debounce timer, if any.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.filterTimer != nil {
		s.filterTimer.Stop()
		s.filterTimer = nil
	}
}

// currentCard returns the card at the session position, or nil when the
// machine is in the NoDeck state. Caller must hold s.mu.
func (s *Service) currentCard() *domain.Card {
	if !s.browsing || len(s.view) == 0 {
		return nil
	}
	return &s.deck.Cards[s.view[s.sess.position]]
}
