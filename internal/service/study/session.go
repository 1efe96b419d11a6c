package study

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

func newSessionID() uuid.UUID { return uuid.New() }

// Flip toggles the shown face in place. No-op while no card is shown.
func (s *Service) Flip() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browsing {
		s.sess.face = s.sess.face.Toggle()
	}
	return s.snapshotLocked()
}

// Move advances the position by direction (±1), wrapping circularly in
// both directions, and resets the face to front. No-op on an empty
// view.
func (s *Service) Move(input MoveInput) (Snapshot, error) {
	if err := input.Validate(); err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browsing {
		s.moveLocked(input.Direction)
	}
	return s.snapshotLocked(), nil
}

// moveLocked applies the wrap-around position arithmetic and fires
// auto-speak for the newly visible card. Caller must hold s.mu and
// guarantee a non-empty view.
func (s *Service) moveLocked(direction int) {
	n := len(s.view)
	s.sess.position = (s.sess.position + direction + n) % n
	s.sess.face = domain.FaceFront
	s.autoSpeakLocked()
}

// Rate records a rating for the card at the current position, then
// behaves exactly like Move(+1): it always advances forward by one,
// regardless of level. Rating with no card shown is an error surfaced
// to the caller.
func (s *Service) Rate(ctx context.Context, input RateInput) (Snapshot, error) {
	if err := input.Validate(); err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.currentCard()
	if card == nil {
		return Snapshot{}, domain.ErrNoDeck
	}

	rec, err := s.progress.RecordRating(ctx, card.ID, input.Level)
	if err != nil {
		return Snapshot{}, err
	}

	s.log.Info("card rated",
		slog.String("card_id", card.ID),
		slog.String("level", string(input.Level)),
		slog.Time("at", rec.At),
	)

	s.moveLocked(+1)
	return s.snapshotLocked(), nil
}
