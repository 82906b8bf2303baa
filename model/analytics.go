package model

import "time"

// SearchEvent represents a single query for analytics tracking
type SearchEvent struct {
	Query        string                 `json:"query"`
	Source       string                 `json:"source"` // "api", "chat", "cli"
	ResultCounts map[CollectionName]int `json:"result_counts"`
	Suggestions  int                    `json:"suggestions"`
	ResponseTime time.Duration          `json:"response_time"`
	Timestamp    time.Time              `json:"timestamp"`
}

// TotalResults sums the results over all collections.
func (e SearchEvent) TotalResults() int {
	total := 0
	for _, count := range e.ResultCounts {
		total += count
	}
	return total
}

// PopularSearch represents aggregated data for a query
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// CollectionStats represents statistics for a specific collection
type CollectionStats struct {
	Collection  CollectionName `json:"collection"`
	RecordCount int            `json:"record_count"`
	HitCount    int            `json:"hit_count"` // searches that returned at least one record
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To1ms     int     `json:"bucket_0_1ms"`
	Bucket1To5ms     int     `json:"bucket_1_5ms"`
	Bucket5To25ms    int     `json:"bucket_5_25ms"`
	Bucket25msPlus   int     `json:"bucket_25ms_plus"`
	Percentage0To1   float64 `json:"percentage_0_1"`
	Percentage1To5   float64 `json:"percentage_1_5"`
	Percentage5To25  float64 `json:"percentage_5_25"`
	Percentage25Plus float64 `json:"percentage_25_plus"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	// Summary metrics
	TotalSearches     int     `json:"total_searches"`
	NoMatchSearches   int     `json:"no_match_searches"`
	NoMatchRate       float64 `json:"no_match_rate_percent"`
	SuggestionsServed int     `json:"suggestions_served"`
	AvgResponseTimeUs int64   `json:"avg_response_time_us"`

	// Detailed analytics
	PopularSearches          []PopularSearch          `json:"popular_searches"`
	NoMatchQueries           []PopularSearch          `json:"no_match_queries"`
	Collections              []CollectionStats        `json:"collections"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
}
