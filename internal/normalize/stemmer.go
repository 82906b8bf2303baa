package normalize

import (
	"strings"
	"sync"

	sastrawi "github.com/RadhiFadlillah/go-sastrawi"
)

// defaultCacheSize bounds the per-word cache
const defaultCacheSize = 5000

// pluralSuffixes may follow a reduplicated word, as in "buku-bukunya" written "buku-buku-nya".
var pluralSuffixes = map[string]bool{
	"ku": true, "mu": true, "nya": true,
	"lah": true, "kah": true, "tah": true, "pun": true,
}

// IndonesianStemmer reduces Indonesian words to their roots with the Sastrawi
// confix-stripping stemmer.
//
// Text is normalized (lowercase, only [a-z0-9 -] kept), split on whitespace, and every
// word is stemmed on its own; the stems are joined with a single space.
// A word whose root cannot be found in the dictionary is returned unchanged.
type IndonesianStemmer struct {
	dict    *Dictionary
	stemmer sastrawi.Stemmer

	cache        map[string]string
	cacheMu      sync.RWMutex
	maxCacheSize int
}

// NewStemmer creates a stemmer. A nil dictionary selects DefaultDictionary.
// The dictionary must not change once the stemmer is in use.
func NewStemmer(dict *Dictionary) *IndonesianStemmer {
	if dict == nil {
		dict = DefaultDictionary()
	}
	return &IndonesianStemmer{
		dict:         dict,
		stemmer:      sastrawi.NewStemmer(dict.words),
		cache:        make(map[string]string),
		maxCacheSize: defaultCacheSize,
	}
}

// Stem returns the stemmed form of text. Empty text maps to the empty string.
func (s *IndonesianStemmer) Stem(text string) string {
	words := strings.Fields(normalizeText(text))
	if len(words) == 0 {
		return ""
	}

	stems := make([]string, len(words))
	for i, word := range words {
		stems[i] = s.stemWord(word)
	}
	return strings.Join(stems, " ")
}

// stemWord stems one normalized word, consulting the cache first
func (s *IndonesianStemmer) stemWord(word string) string {
	s.cacheMu.RLock()
	if cached, exists := s.cache[word]; exists {
		s.cacheMu.RUnlock()
		return cached
	}
	s.cacheMu.RUnlock()

	var stem string
	if isPlural(word) {
		stem = s.stemPlural(word)
	} else {
		stem = s.stemmer.Stem(word)
	}

	s.cacheMu.Lock()
	if len(s.cache) < s.maxCacheSize {
		s.cache[word] = stem
	}
	s.cacheMu.Unlock()

	return stem
}

// isPlural reports whether word is reduplicated. A hyphen before a lone
// possessive or particle ("buku-nya") does not count.
func isPlural(word string) bool {
	head, tail, found := cutLast(word)
	if !found {
		return false
	}
	if pluralSuffixes[tail] {
		return strings.Contains(head, "-")
	}
	return true
}

// stemPlural handles reduplicated words such as "surat-surat".
// Both halves must reduce to the same root, otherwise the word is kept.
func (s *IndonesianStemmer) stemPlural(word string) string {
	first, second, _ := cutLast(word)
	if pluralSuffixes[second] {
		if head, tail, ok := cutLast(first); ok {
			first, second = head, tail+"-"+second
		}
	}

	rootFirst := s.stemmer.Stem(first)
	rootSecond := s.stemmer.Stem(second)
	// the second half may be a verb written without its me- prefix
	if !s.dict.Contains(second) && rootSecond == second {
		rootSecond = s.stemmer.Stem("me" + second)
	}

	if rootFirst == rootSecond {
		return rootFirst
	}
	return word
}

// cutLast splits word around its last hyphen.
func cutLast(word string) (before, after string, found bool) {
	i := strings.LastIndex(word, "-")
	if i < 0 {
		return word, "", false
	}
	return word[:i], word[i+1:], true
}
