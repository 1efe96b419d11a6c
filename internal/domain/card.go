package domain

import (
	"time"
)

// Card is a single study unit built from one imported row.
// Cards are immutable once constructed; a Card with an empty Front or
// Back (after trimming) is never admitted to a Deck.
type Card struct {
	// ID is a content-derived stable identifier (see deck.StableID).
	// It is the key under which ratings persist across re-imports.
	ID      string
	Front   string
	Back    string
	Example string
	// Tags is a free-text tag string. It is matched as a raw
	// case-folded substring, never parsed into a set.
	Tags string
}

// FrontText returns the text the card presents as its front side.
// When preferExample is set and the card has an example sentence,
// the example is shown instead of the prompt.
func (c *Card) FrontText(preferExample bool) string {
	if preferExample && c.Example != "" {
		return c.Example
	}
	return c.Front
}

// Deck is the ordered set of valid cards from the most recent import.
// Replacing the deck discards all derived view state but never touches
// persisted progress.
type Deck struct {
	Name  string
	Cards []Card
}

// Size returns the number of cards in the deck. Nil-safe.
func (d *Deck) Size() int {
	if d == nil {
		return 0
	}
	return len(d.Cards)
}

// RatingRecord is a single recall-difficulty judgement for a card.
// Re-rating a card overwrites its previous record.
type RatingRecord struct {
	Level RatingLevel `json:"level"`
	At    time.Time   `json:"at"`
}

// ProgressState is the entire persisted progress document.
// It is owned by the progress store: loaded once at startup and written
// back after every mutation.
type ProgressState struct {
	Ratings  map[string]RatingRecord `json:"ratings"`
	VoiceURI string                  `json:"voiceURI"`
}

// NewProgressState returns an empty, usable progress state.
func NewProgressState() ProgressState {
	return ProgressState{Ratings: make(map[string]RatingRecord)}
}

// Clone returns a deep copy of the state so callers can hand it out
// without exposing the store's internal map.
func (p ProgressState) Clone() ProgressState {
	out := ProgressState{
		Ratings:  make(map[string]RatingRecord, len(p.Ratings)),
		VoiceURI: p.VoiceURI,
	}
	for id, rec := range p.Ratings {
		out.Ratings[id] = rec
	}
	return out
}

// RatingCounts holds per-level rating counters for the stats line.
type RatingCounts struct {
	Rated int
	Again int
	Good  int
	Easy  int
}

// Counts aggregates the persisted ratings by level.
func (p ProgressState) Counts() RatingCounts {
	var c RatingCounts
	for _, rec := range p.Ratings {
		c.Rated++
		switch rec.Level {
		case RatingAgain:
			c.Again++
		case RatingGood:
			c.Good++
		case RatingEasy:
			c.Easy++
		}
	}
	return c
}

// Voice describes one synthesizer voice offered by the speech engine.
type Voice struct {
	URI  string `json:"uri"`
	Name string `json:"name"`
	Lang string `json:"lang"`
}
