// Package fuzzy implements the edit-distance based similarity scores used to rank
// records and to propose corrected queries. All scores are integers in [0,100].
package fuzzy

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/couvx/chatbot/internal/tokenizer"
)

// Ratio returns the normalized Indel similarity of a and b in [0,100].
// Two empty strings are identical (100); one empty string never matches (0).
// The score is rounded half to even.
func Ratio(a, b string) int {
	lenSum := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if lenSum == 0 {
		return 100
	}

	dist := CalculateIndelDistance(a, b)
	return roundScore(100 * (1 - float64(dist)/float64(lenSum)))
}

// TokenSetRatio compares a and b as sets of tokens, ignoring word order and duplicates.
//
// Both inputs are processed with tokenizer.Process first. The shared tokens form a
// common prefix ("sect"); the remaining tokens of each side are sorted and appended.
// The result is the best Ratio among sect vs sect+restA, sect vs sect+restB and
// sect+restA vs sect+restB. If one side's tokens are all contained in the other,
// the score is 100.
func TokenSetRatio(a, b string) int {
	tokensA := tokenSet(tokenizer.Tokenize(a))
	tokensB := tokenSet(tokenizer.Tokenize(b))

	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := make([]string, 0)
	onlyA := make([]string, 0)
	onlyB := make([]string, 0)

	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			intersection = append(intersection, token)
		} else {
			onlyA = append(onlyA, token)
		}
	}
	for token := range tokensB {
		if _, ok := tokensA[token]; !ok {
			onlyB = append(onlyB, token)
		}
	}

	if len(intersection) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	sortedSect := joinSorted(intersection)
	combinedA := joinNonEmpty(sortedSect, joinSorted(onlyA))
	combinedB := joinNonEmpty(sortedSect, joinSorted(onlyB))

	best := Ratio(combinedA, combinedB)
	if sortedSect == "" {
		return best
	}

	best = max(best, Ratio(sortedSect, combinedA))
	best = max(best, Ratio(sortedSect, combinedB))
	return best
}

// tokenSet deduplicates tokens
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

func joinSorted(tokens []string) string {
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

func joinNonEmpty(prefix, rest string) string {
	switch {
	case prefix == "":
		return rest
	case rest == "":
		return prefix
	default:
		return prefix + " " + rest
	}
}

func roundScore(score float64) int {
	return int(math.RoundToEven(score))
}
