package search

import (
	"sort"
	"strings"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/fuzzy"
	"github.com/couvx/chatbot/internal/normalize"
	"github.com/couvx/chatbot/model"
)

// Service ranks the records of a collection against a free-text query.
// It fulfills the services.Searcher interface and is safe for concurrent use:
// scoring is a pure function of the query, the collection snapshot and the settings.
type Service struct {
	stemmer  normalize.Stemmer
	settings config.ScoringSettings
}

// NewService creates a new search Service. A nil stemmer selects the default
// Indonesian stemmer; settings are completed with their defaults.
func NewService(stemmer normalize.Stemmer, settings config.ScoringSettings) *Service {
	if stemmer == nil {
		stemmer = normalize.NewStemmer(nil)
	}
	settings.ApplyDefaults()

	return &Service{
		stemmer:  stemmer,
		settings: settings,
	}
}

// Settings returns the scoring settings in use.
func (s *Service) Settings() config.ScoringSettings {
	return s.settings
}

// Search scores every record of collection against query and returns those whose
// score is strictly greater than threshold, best first. Ties are ordered by code,
// then by position in the collection.
func (s *Service) Search(query string, collection model.Collection, threshold int) []model.ScoredResult {
	results := make([]model.ScoredResult, 0)
	if len(collection) == 0 {
		return results
	}

	q := normalize.Clean(query)
	qStem := s.stemmer.Stem(q)

	for _, record := range collection {
		score := s.scoreRecord(q, qStem, record)
		if score > threshold {
			results = append(results, model.ScoredResult{Record: record, Score: score})
		}
	}

	sortResults(results)
	return results
}

// Score returns the relevance of a single record, without applying a threshold.
func (s *Service) Score(query string, record model.Record) int {
	q := normalize.Clean(query)
	return s.scoreRecord(q, s.stemmer.Stem(q), record)
}

// scoreRecord combines the code bonus, the token set similarity and the stem bonus.
// q must already be cleaned and qStem must be its stem. The empty string is a
// substring of every code and text, so a query that is empty, or stems to
// nothing, earns both substring bonuses.
func (s *Service) scoreRecord(q, qStem string, record model.Record) int {
	code := strings.ToLower(record.Code)
	text := record.SearchableText()

	exactBonus := 0
	switch {
	case q == code:
		exactBonus = s.settings.ExactCodeBonus
	case strings.Contains(code, q):
		exactBonus = s.settings.PartialCodeBonus
	}

	fuzzyScore := fuzzy.TokenSetRatio(q, text)

	stemBonus := 0
	if strings.Contains(text, qStem) {
		stemBonus = s.settings.StemBonus
	}

	return min(exactBonus+fuzzyScore+stemBonus, s.settings.MaxScore)
}

// sortResults orders by score descending, then code ascending.
// The sort is stable so records with equal score and code keep collection order.
func sortResults(results []model.ScoredResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Code < results[j].Code
	})
}
