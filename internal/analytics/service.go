package analytics

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/couvx/chatbot/model"
	"github.com/couvx/chatbot/services"
)

const (
	maxEventsToKeep = 10000 // Keep last 10k events for performance
	topQueriesLimit = 5
)

// Service implements query analytics tracking and reporting.
// Events are kept in memory only and are lost on restart.
type Service struct {
	mutex   sync.RWMutex
	events  []model.SearchEvent
	records services.RecordCounter
	now     func() time.Time
}

// NewService creates a new analytics service. records supplies the current
// collection sizes for the dashboard and may be nil.
func NewService(records services.RecordCounter) *Service {
	return &Service{
		events:  make([]model.SearchEvent, 0),
		records: records,
		now:     time.Now,
	}
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// EventCount returns the number of retained events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// GetDashboardData returns complete analytics dashboard data
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	noMatch := s.filterNoMatch(s.events)

	dashboard := model.AnalyticsDashboard{
		TotalSearches:            len(s.events),
		NoMatchSearches:          len(noMatch),
		NoMatchRate:              percentage(len(noMatch), len(s.events)),
		SuggestionsServed:        s.countSuggestions(s.events),
		AvgResponseTimeUs:        s.calculateAvgResponseTime(s.events),
		PopularSearches:          s.getPopularSearches(s.events),
		NoMatchQueries:           s.getPopularSearches(noMatch),
		Collections:              s.getCollectionStats(s.events),
		ResponseTimeDistribution: s.getResponseTimeDistribution(s.events),
	}

	return dashboard
}

// filterNoMatch returns events that produced no result in any collection
func (s *Service) filterNoMatch(events []model.SearchEvent) []model.SearchEvent {
	filtered := make([]model.SearchEvent, 0)
	for _, event := range events {
		if event.TotalResults() == 0 {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func (s *Service) countSuggestions(events []model.SearchEvent) int {
	total := 0
	for _, event := range events {
		total += event.Suggestions
	}
	return total
}

// calculateAvgResponseTime calculates average response time for events in microseconds
func (s *Service) calculateAvgResponseTime(events []model.SearchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	avgDuration := total / time.Duration(len(events))
	return avgDuration.Microseconds()
}

// getPopularSearches returns the most frequent queries.
// Queries are compared case-insensitively after trimming.
func (s *Service) getPopularSearches(events []model.SearchEvent) []model.PopularSearch {
	queryCounts := make(map[string]int)

	for _, event := range events {
		query := strings.ToLower(strings.TrimSpace(event.Query))
		if query != "" {
			queryCounts[query]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}

	// Sort by count descending, then alphabetically for a stable dashboard
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if len(popular) > topQueriesLimit {
		popular = popular[:topQueriesLimit]
	}
	return popular
}

// getCollectionStats returns hit counts and sizes for each collection
func (s *Service) getCollectionStats(events []model.SearchEvent) []model.CollectionStats {
	hits := make(map[model.CollectionName]int)
	for _, event := range events {
		for name, count := range event.ResultCounts {
			if count > 0 {
				hits[name]++
			}
		}
	}

	var sizes map[model.CollectionName]int
	if s.records != nil {
		sizes = s.records.Counts()
	}

	stats := make([]model.CollectionStats, 0, len(model.CollectionNames))
	for _, name := range model.CollectionNames {
		stats = append(stats, model.CollectionStats{
			Collection:  name,
			RecordCount: sizes[name],
			HitCount:    hits[name],
		})
	}
	return stats
}

// getResponseTimeDistribution returns response time distribution
func (s *Service) getResponseTimeDistribution(events []model.SearchEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	total := len(events)

	if total == 0 {
		return dist
	}

	for _, event := range events {
		switch rt := event.ResponseTime; {
		case rt <= time.Millisecond:
			dist.Bucket0To1ms++
		case rt <= 5*time.Millisecond:
			dist.Bucket1To5ms++
		case rt <= 25*time.Millisecond:
			dist.Bucket5To25ms++
		default:
			dist.Bucket25msPlus++
		}
	}

	// Calculate percentages
	dist.Percentage0To1 = percentage(dist.Bucket0To1ms, total)
	dist.Percentage1To5 = percentage(dist.Bucket1To5ms, total)
	dist.Percentage5To25 = percentage(dist.Bucket5To25ms, total)
	dist.Percentage25Plus = percentage(dist.Bucket25msPlus, total)

	return dist
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
