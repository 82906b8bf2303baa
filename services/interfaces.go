package services

import (
	"context"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/model"
)

// Searcher ranks the records of a collection against a query
type Searcher interface {
	Search(query string, collection model.Collection, threshold int) []model.ScoredResult
	MultiSearch(ctx context.Context, query string, collections map[model.CollectionName]model.Collection, threshold int) (map[model.CollectionName][]model.ScoredResult, error)
	Settings() config.ScoringSettings
}

// Suggester proposes corrected single-word queries
type Suggester interface {
	Suggest(query string, collection model.Collection, minRatio, limit int) []model.Suggestion
}

// RecordCounter reports the number of records per collection
type RecordCounter interface {
	Counts() map[model.CollectionName]int
}

// RecordSource gives access to the current collection snapshot
type RecordSource interface {
	RecordCounter
	Collection(name model.CollectionName) (model.Collection, error)
	Collections() map[model.CollectionName]model.Collection
}

// RecordManager extends RecordSource with whole-collection lifecycle operations
type RecordManager interface {
	RecordSource
	Refresh()
	Replace(name model.CollectionName, records model.Collection) error
}

// SearchTracker records query analytics
type SearchTracker interface {
	TrackSearchEvent(event model.SearchEvent)
	GetDashboardData() model.AnalyticsDashboard
}
