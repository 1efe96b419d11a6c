package deck

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// idPrefix tags content-derived card identifiers in the progress store.
const idPrefix = "c_"

// StableID derives a deterministic identifier for a card from its
// content fields and its zero-based ordinal position in the source file.
// The ordinal disambiguates otherwise-identical duplicate rows while
// keeping the id reload-stable, so rating history survives re-imports as
// long as a card's text and position do not both change.
//
// The id is a 32-bit FNV-1a hash of the case-folded fields joined with
// "||", rendered as lowercase hex. A 32-bit hash may collide across
// unrelated cards, silently merging their rating histories; this is an
// accepted limitation.
func StableID(front, back, example, tags string, ordinal int) string {
	s := strings.ToLower(fmt.Sprintf("%s||%s||%s||%s||%d", front, back, example, tags, ordinal))

	h := fnv.New32a()
	h.Write([]byte(s)) //nolint:errcheck
	return idPrefix + fmt.Sprintf("%x", h.Sum32())
}
