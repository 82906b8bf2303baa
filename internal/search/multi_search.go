package search

import (
	"context"
	"fmt"

	"github.com/couvx/chatbot/model"
)

// MultiSearch runs the same query against several collections in parallel.
// Each collection is scored independently; the result maps every requested
// collection name to its ranked results (possibly empty).
func (s *Service) MultiSearch(ctx context.Context, query string, collections map[model.CollectionName]model.Collection, threshold int) (map[model.CollectionName][]model.ScoredResult, error) {
	if len(collections) == 0 {
		return nil, fmt.Errorf("at least one collection is required")
	}

	type collectionResult struct {
		name    model.CollectionName
		results []model.ScoredResult
	}

	resultChan := make(chan collectionResult, len(collections))

	for name, collection := range collections {
		go func(name model.CollectionName, collection model.Collection) {
			resultChan <- collectionResult{
				name:    name,
				results: s.Search(query, collection, threshold),
			}
		}(name, collection)
	}

	results := make(map[model.CollectionName][]model.ScoredResult, len(collections))
	for i := 0; i < len(collections); i++ {
		select {
		case cr := <-resultChan:
			results[cr.name] = cr.results
		case <-ctx.Done():
			return nil, fmt.Errorf("multi-search cancelled: %w", ctx.Err())
		}
	}

	return results, nil
}
