package deck

import (
	"strings"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

// Recognized header names. The original deck format used fr/en for the
// two required columns; both spellings are accepted so existing decks
// keep importing.
var (
	frontHeaders = []string{"front", "fr"}
	backHeaders  = []string{"back", "en"}
)

const (
	exampleHeader = "example"
	tagsHeader    = "tags"
)

// Build validates parsed rows against the column schema and constructs
// a Deck. The first row is the header; header cells are trimmed and
// case-folded for matching.
//
// Missing required columns abort the import with a SchemaError. Data
// rows with an empty front or back after trimming are silently dropped.
// Zero rows, or a header with zero surviving data rows, yield
// ErrEmptyImport rather than an empty deck.
func Build(rows [][]string, name string) (*domain.Deck, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptyImport
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	iFront := indexOfAny(header, frontHeaders)
	iBack := indexOfAny(header, backHeaders)
	iExample := indexOf(header, exampleHeader)
	iTags := indexOf(header, tagsHeader)

	var missing []string
	if iFront < 0 {
		missing = append(missing, "front")
	}
	if iBack < 0 {
		missing = append(missing, "back")
	}
	if len(missing) > 0 {
		return nil, domain.NewSchemaError(missing...)
	}

	cards := make([]domain.Card, 0, len(rows)-1)
	n := -1
	for _, row := range rows[1:] {
		if allBlank(row) {
			continue
		}
		// Ordinal counts usable data rows only, so whitespace-only rows
		// never shift the ids of the cards that follow them.
		n++

		front := strings.TrimSpace(cell(row, iFront))
		back := strings.TrimSpace(cell(row, iBack))
		example := strings.TrimSpace(cell(row, iExample))
		tags := strings.TrimSpace(cell(row, iTags))

		if front == "" || back == "" {
			continue
		}

		cards = append(cards, domain.Card{
			ID:      StableID(front, back, example, tags, n),
			Front:   front,
			Back:    back,
			Example: example,
			Tags:    tags,
		})
	}

	if len(cards) == 0 {
		return nil, domain.ErrEmptyImport
	}

	return &domain.Deck{Name: name, Cards: cards}, nil
}

// allBlank reports whether every field in the row trims to empty.
func allBlank(row []string) bool {
	for _, f := range row {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// cell returns row[i], tolerating short rows and absent optional columns.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func indexOfAny(header []string, names []string) int {
	for _, name := range names {
		if i := indexOf(header, name); i >= 0 {
			return i
		}
	}
	return -1
}
