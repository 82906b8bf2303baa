// Package suggest proposes corrected single-word queries ("did you mean")
// drawn from the words of a record collection.
package suggest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/fuzzy"
	"github.com/couvx/chatbot/internal/tokenizer"
	"github.com/couvx/chatbot/model"
)

// Engine finds vocabulary words close to a misspelled query.
type Engine struct {
	minWordLength int
}

// NewEngine creates a suggestion engine. Words shorter than
// settings.MinSuggestWordLength are never proposed.
func NewEngine(settings config.ScoringSettings) *Engine {
	settings.ApplyDefaults()
	return &Engine{minWordLength: settings.MinSuggestWordLength}
}

// Suggest returns up to limit vocabulary words whose Ratio against the lowercased
// query is at least minRatio and below 100. Exact words are excluded because they
// would already have produced a search hit.
//
// Words are ordered by ratio descending, then alphabetically.
func (e *Engine) Suggest(query string, collection model.Collection, minRatio, limit int) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0)
	if len(collection) == 0 || limit <= 0 {
		return suggestions
	}

	q := strings.ToLower(query)
	for _, word := range Vocabulary(collection, e.minWordLength) {
		ratio := fuzzy.Ratio(q, word)
		if ratio >= minRatio && ratio < 100 {
			suggestions = append(suggestions, model.Suggestion{Word: word, Ratio: ratio})
		}
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Ratio != suggestions[j].Ratio {
			return suggestions[i].Ratio > suggestions[j].Ratio
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Vocabulary collects the distinct words of every record's category and description,
// keeping those with at least minWordLength characters. The result is sorted.
func Vocabulary(collection model.Collection, minWordLength int) []string {
	seen := make(map[string]struct{})
	words := make([]string, 0)

	for _, record := range collection {
		for _, word := range tokenizer.Words(record.Category + " " + record.Description) {
			if utf8.RuneCountInString(word) < minWordLength {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			words = append(words, word)
		}
	}

	sort.Strings(words)
	return words
}
