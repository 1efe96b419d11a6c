package domain

import (
	"strings"
)

// FoldFilter prepares a tag-filter needle for matching:
// trims leading/trailing whitespace and converts to lowercase.
// Tag matching is a raw substring test over the folded forms, so no
// tokenization happens here.
func FoldFilter(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchesTags reports whether the card's tag string contains the folded
// needle as a case-insensitive substring. An empty needle matches every
// card.
func MatchesTags(tags, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(tags), needle)
}
