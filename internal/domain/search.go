package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Normalize trims surrounding whitespace and case-folds s.
// Apply it to both sides of every genre, director, and keyword comparison.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// EqualFold reports whether a and b are equal after normalization
func EqualFold(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// ContainsFold reports whether the normalized keyword occurs in the normalized text
func ContainsFold(text, keyword string) bool {
	return strings.Contains(Normalize(text), Normalize(keyword))
}
