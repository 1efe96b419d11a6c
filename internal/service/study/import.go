package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashdeck/internal/deck"
)

// ImportDeck parses the CSV text and replaces the current deck. The
// current filter and options survive the swap; the session does not, a
// fresh one starts at position 0. On any parse or schema error the
// previously loaded deck is left untouched.
func (s *Service) ImportDeck(ctx context.Context, input ImportInput) (Snapshot, error) {
	if err := input.Validate(); err != nil {
		return Snapshot{}, err
	}

	d, err := deck.Build(deck.Parse(input.Text), input.Name)
	if err != nil {
		return Snapshot{}, fmt.Errorf("import deck %q: %w", input.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deck = d

	s.log.Info("deck imported",
		slog.String("name", d.Name),
		slog.Int("cards", d.Size()),
	)

	if s.filterTimer != nil {
		s.filterTimer.Stop()
		s.filterTimer = nil
	}
	s.rebuildLocked()
	return s.snapshotLocked(), nil
}

// LoadSample fetches the configured sample deck and imports it.
func (s *Service) LoadSample(ctx context.Context) (Snapshot, error) {
	text, name, err := s.samples.Fetch(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch sample deck: %w", err)
	}
	return s.ImportDeck(ctx, ImportInput{Text: text, Name: name})
}
