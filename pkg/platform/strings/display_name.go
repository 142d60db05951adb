package strings

import (
	"strings"
	"unicode"
)

// NormalizeDisplayName turns a handwritten recipe name into its display form:
// hyphens and underscores become spaces, anything that is not an ASCII letter
// or a space is dropped, runs of spaces collapse, and every word is
// capitalized with the rest lowercased. ok is false when nothing remains.
//
// Example:
//
//	NormalizeDisplayName("Riz@z RISO00tto!")
//	// Returns: "Rizz Risotto", true
func NormalizeDisplayName(raw string) (string, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '-' || r == '_' || r == ' ':
			return ' '
		case r <= unicode.MaxASCII && unicode.IsLetter(r):
			return r
		default:
			return -1
		}
	}, raw)

	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return "", false
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " "), true
}
