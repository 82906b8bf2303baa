// Package normalize cleans query text and reduces Indonesian words to their roots.
package normalize

import (
	"strings"
)

// Stemmer reduces text to its morphological root form.
// Implementations must be deterministic and safe for concurrent use.
type Stemmer interface {
	Stem(text string) string
}

// Clean lowercases text and trims surrounding whitespace.
func Clean(text string) string {
	return strings.TrimSpace(strings.ToLower(text))
}

// normalizeText prepares text for stemming: lowercase, every character outside
// [a-z0-9 -] becomes a space, runs of spaces collapse to one, ends are trimmed.
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
			continue
		}
		b.WriteByte(' ')
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
