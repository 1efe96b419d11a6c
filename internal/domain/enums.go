package domain

// RatingLevel represents the user's self-assessed recall quality.
// The values are lowercase because they appear verbatim in the persisted
// progress document.
type RatingLevel string

const (
	RatingAgain RatingLevel = "again"
	RatingGood  RatingLevel = "good"
	RatingEasy  RatingLevel = "easy"
)

func (l RatingLevel) String() string { return string(l) }

func (l RatingLevel) IsValid() bool {
	switch l {
	case RatingAgain, RatingGood, RatingEasy:
		return true
	}
	return false
}

// CardFace identifies which side of the current card is shown.
type CardFace string

const (
	FaceFront CardFace = "front"
	FaceBack  CardFace = "back"
)

func (f CardFace) String() string { return string(f) }

func (f CardFace) IsValid() bool {
	switch f {
	case FaceFront, FaceBack:
		return true
	}
	return false
}

// Toggle returns the opposite face.
func (f CardFace) Toggle() CardFace {
	if f == FaceFront {
		return FaceBack
	}
	return FaceFront
}

// Theme is the persisted UI theme preference, stored independently of
// the progress document.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	}
	return false
}

// SessionState distinguishes "no deck loaded" from an active browsing
// session; an empty filter result keeps the deck but yields NoDeck-like
// navigation, reported separately via view size.
type SessionState string

const (
	SessionNoDeck   SessionState = "no_deck"
	SessionBrowsing SessionState = "browsing"
)

func (s SessionState) String() string { return string(s) }
