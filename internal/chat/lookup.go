// Package chat implements the conversation shell: it routes user text to the
// collections, keeps the exchanged turns and offers did-you-mean suggestions when
// nothing matched.
package chat

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/couvx/chatbot/internal/errors"
	"github.com/couvx/chatbot/internal/logger"
	"github.com/couvx/chatbot/internal/metrics"
	"github.com/couvx/chatbot/model"
	"github.com/couvx/chatbot/services"
)

// Answer is the outcome of one query over one or more collections.
type Answer struct {
	Query       string                                        `json:"query"`
	Results     map[model.CollectionName][]model.ScoredResult `json:"results"`
	Suggestions []model.Suggestion                            `json:"suggestions"`
	Took        time.Duration                                 `json:"took"`
}

// Total returns the number of results over all collections.
func (a Answer) Total() int {
	total := 0
	for _, results := range a.Results {
		total += len(results)
	}
	return total
}

// Lookup runs a query against the current record snapshot and, when no collection
// produced a result, collects suggestions from the searched collections.
type Lookup struct {
	records   services.RecordSource
	searcher  services.Searcher
	suggester services.Suggester
	tracker   services.SearchTracker
	logger    *zap.Logger
}

// NewLookup creates a Lookup. tracker and l may be nil.
func NewLookup(records services.RecordSource, searcher services.Searcher, suggester services.Suggester, tracker services.SearchTracker, l *zap.Logger) *Lookup {
	return &Lookup{
		records:   records,
		searcher:  searcher,
		suggester: suggester,
		tracker:   tracker,
		logger:    logger.OrNop(l),
	}
}

// Run searches the named collections (all of them when names is empty) with the
// configured threshold. source labels the analytics event ("api", "cli", "chat").
func (l *Lookup) Run(ctx context.Context, query, source string, names ...model.CollectionName) (Answer, error) {
	return l.RunWithThreshold(ctx, query, source, l.searcher.Settings().MatchThreshold, names...)
}

// RunWithThreshold is Run with an explicit match threshold.
func (l *Lookup) RunWithThreshold(ctx context.Context, query, source string, threshold int, names ...model.CollectionName) (Answer, error) {
	if strings.TrimSpace(query) == "" {
		return Answer{}, apperrors.NewValidationError("query", "cannot be empty")
	}
	if len(names) == 0 {
		names = model.CollectionNames
	}

	start := time.Now()
	settings := l.searcher.Settings()

	collections, err := l.collections(names)
	if err != nil {
		return Answer{}, err
	}

	results, err := l.searcher.MultiSearch(ctx, query, collections, threshold)
	if err != nil {
		return Answer{}, fmt.Errorf("failed to search collections: %w", err)
	}

	answer := Answer{
		Query:       query,
		Results:     results,
		Suggestions: make([]model.Suggestion, 0),
	}

	if answer.Total() == 0 {
		pool := make(model.Collection, 0)
		for _, name := range names {
			pool = append(pool, collections[name]...)
		}
		answer.Suggestions = l.suggester.Suggest(query, pool, settings.SuggestMinRatio, settings.SuggestLimit)
	}
	answer.Took = time.Since(start)

	l.record(answer, source)
	return answer, nil
}

// collections reads the named collections. Searching every collection reads them
// from one snapshot, so a concurrent refresh cannot pair old codes with new types.
func (l *Lookup) collections(names []model.CollectionName) (map[model.CollectionName]model.Collection, error) {
	if slices.Equal(names, model.CollectionNames) {
		return l.records.Collections(), nil
	}

	collections := make(map[model.CollectionName]model.Collection, len(names))
	for _, name := range names {
		collection, err := l.records.Collection(name)
		if err != nil {
			return nil, err
		}
		collections[name] = collection
	}
	return collections, nil
}

// record publishes metrics, analytics and a debug log line for the answer
func (l *Lookup) record(answer Answer, source string) {
	counts := make(map[model.CollectionName]int, len(answer.Results))
	for name, results := range answer.Results {
		counts[name] = len(results)
		metrics.RecordQuery(name, len(results))
	}
	metrics.RecordSuggestions(len(answer.Suggestions))

	if l.tracker != nil {
		l.tracker.TrackSearchEvent(model.SearchEvent{
			Query:        answer.Query,
			Source:       source,
			ResultCounts: counts,
			Suggestions:  len(answer.Suggestions),
			ResponseTime: answer.Took,
		})
	}

	l.logger.Debug("query answered",
		zap.String("query", answer.Query),
		zap.String("source", source),
		zap.Int("results", answer.Total()),
		zap.Int("suggestions", len(answer.Suggestions)),
		zap.Duration("took", answer.Took))
}
