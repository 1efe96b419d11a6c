package study

import (
	"log/slog"
	"time"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// buildView derives the working set: indices into the deck for every
// card whose tags contain the folded filter needle, in deck order. When
// shuffle is on the order is permuted uniformly, reshuffled on every
// rebuild, not just once. The deck itself is never mutated.
func buildView(d *domain.Deck, filterTag string, shuffle bool, shuffleFn func(n int, swap func(i, j int))) []int {
	if d == nil {
		return nil
	}

	needle := domain.FoldFilter(filterTag)

	view := make([]int, 0, len(d.Cards))
	for i := range d.Cards {
		if domain.MatchesTags(d.Cards[i].Tags, needle) {
			view = append(view, i)
		}
	}

	if shuffle {
		shuffleFn(len(view), func(i, j int) {
			view[i], view[j] = view[j], view[i]
		})
	}

	return view
}

// rebuildLocked recomputes the view from the current deck and options
// and starts a fresh session: position 0, front face. An empty view
// (nothing passes the filter, or no deck) puts the machine in the
// NoDeck state. Caller must hold s.mu.
func (s *Service) rebuildLocked() {
	s.view = buildView(s.deck, s.opts.FilterTag, s.opts.Shuffle, s.shuffleFn)

	if len(s.view) == 0 {
		s.browsing = false
		s.sess = session{}
		s.log.Info("view rebuilt",
			slog.Int("deck_size", s.deck.Size()),
			slog.Int("view_size", 0),
		)
		return
	}

	s.browsing = true
	s.sess = session{id: newSessionID(), position: 0, face: domain.FaceFront}

	s.log.Info("view rebuilt",
		slog.Int("deck_size", s.deck.Size()),
		slog.Int("view_size", len(s.view)),
		slog.String("session_id", s.sess.id.String()),
		slog.Bool("shuffle", s.opts.Shuffle),
	)

	s.autoSpeakLocked()
}

// SetOptions applies new view options. Shuffle, preferExample, and
// autoSpeak changes rebuild immediately; a filter-text change alone is
// coalesced through a trailing debounce window so the view is not
// rebuilt on every keystroke.
func (s *Service) SetOptions(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()

	onlyFilterChanged := opts.Shuffle == s.opts.Shuffle &&
		opts.PreferExample == s.opts.PreferExample &&
		opts.AutoSpeak == s.opts.AutoSpeak &&
		opts.FilterTag != s.opts.FilterTag

	s.opts = opts

	if s.deck == nil {
		return
	}

	if onlyFilterChanged && s.debounce > 0 {
		s.scheduleRebuildLocked()
		return
	}

	if s.filterTimer != nil {
		s.filterTimer.Stop()
		s.filterTimer = nil
	}
	s.rebuildLocked()
}

// scheduleRebuildLocked arms (or re-arms) the trailing debounce timer.
// Only the last edit inside the quiet window triggers a rebuild.
// Caller must hold s.mu.
func (s *Service) scheduleRebuildLocked() {
	if s.filterTimer != nil {
		s.filterTimer.Stop()
	}
	s.filterTimer = time.AfterFunc(s.debounce, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.filterTimer = nil
		if s.deck != nil {
			s.rebuildLocked()
		}
	})
}

// Options returns the current view options.
func (s *Service) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}
