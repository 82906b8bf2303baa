package tokenizer

import (
	"strings"
	"unicode"
)

// Process prepares a string for fuzzy comparison.
// It drops runes in the Latin-1 supplement range (U+0080..U+00FF), replaces every rune
// that is not a letter or a number with a space, lowercases, and trims the result.
// Inner runs of spaces are kept; Tokenize collapses them.
func Process(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		case r >= 0x80 && r <= 0xFF:
			continue
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(b.String())
}

// Tokenize converts a string into a slice of tokens.
// It processes the text with Process and splits it on whitespace.
func Tokenize(text string) []string {
	tokens := strings.Fields(Process(text))
	if tokens == nil {
		return make([]string, 0) // Return empty slice instead of nil
	}
	return tokens
}

// Words extracts vocabulary words from free text.
// The text is lowercased, every rune that is neither a letter, a number nor whitespace
// is removed (not replaced), and the remainder is split on whitespace.
// For example "PP.01 Surat, mutasi" yields ["pp01", "surat", "mutasi"].
func Words(text string) []string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if words == nil {
		return make([]string, 0)
	}
	return words
}
