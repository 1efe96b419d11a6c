package study

import (
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// CardView is the render model for the card currently shown. FrontText
// already honors the prefer-example option so clients never re-derive
// it.
type CardView struct {
	ID        string `json:"id"`
	FrontText string `json:"frontText"`
	Back      string `json:"back"`
	Example   string `json:"example,omitempty"`
	Tags      string `json:"tags,omitempty"`
}

// Snapshot is the full read model of the study machine after a
// transition. Every mutating operation returns one so clients always
// render from a consistent state.
type Snapshot struct {
	State     domain.SessionState `json:"state"`
	SessionID string              `json:"sessionId,omitempty"`
	DeckName  string              `json:"deckName,omitempty"`
	DeckSize  int                 `json:"deckSize"`
	ViewSize  int                 `json:"viewSize"`
	Position  int                 `json:"position"`
	Face      domain.CardFace     `json:"face"`
	Card      *CardView           `json:"card,omitempty"`
}

// Stats is the aggregate progress line: how the current view relates to
// the deck, plus per-level rating counters over everything persisted.
type Stats struct {
	DeckLoaded bool   `json:"deckLoaded"`
	DeckName   string `json:"deckName,omitempty"`
	DeckSize   int    `json:"deckSize"`
	ViewSize   int    `json:"viewSize"`
	Rated      int    `json:"rated"`
	Again      int    `json:"again"`
	Good       int    `json:"good"`
	Easy       int    `json:"easy"`
}

// snapshotLocked renders the current machine state. Caller must hold
// s.mu.
func (s *Service) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:    domain.SessionNoDeck,
		DeckSize: s.deck.Size(),
		ViewSize: len(s.view),
		Face:     domain.FaceFront,
	}
	if s.deck != nil {
		snap.DeckName = s.deck.Name
	}
	if !s.browsing {
		return snap
	}

	snap.State = domain.SessionBrowsing
	snap.SessionID = s.sess.id.String()
	snap.Position = s.sess.position
	snap.Face = s.sess.face

	card := s.currentCard()
	snap.Card = &CardView{
		ID:        card.ID,
		FrontText: card.FrontText(s.opts.PreferExample),
		Back:      card.Back,
		Example:   card.Example,
		Tags:      card.Tags,
	}
	return snap
}

// Current returns the state as-is, without transitioning.
func (s *Service) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Stats aggregates deck, view, and persisted rating counters.
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := s.progress.Counts()
	st := Stats{
		DeckLoaded: s.deck != nil,
		DeckSize:   s.deck.Size(),
		ViewSize:   len(s.view),
		Rated:      counts.Rated,
		Again:      counts.Again,
		Good:       counts.Good,
		Easy:       counts.Easy,
	}
	if s.deck != nil {
		st.DeckName = s.deck.Name
	}
	return st
}
