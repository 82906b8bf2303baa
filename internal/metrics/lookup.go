package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/couvx/chatbot/model"
)

var (
	queriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Queries scored against a collection",
		},
		[]string{"collection", "outcome"},
	)

	suggestionsOffered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestions_offered_total",
			Help:      "Did-you-mean words offered after a query without results",
		},
	)

	collectionRecords = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "collection_records",
			Help:      "Number of records in the current collection snapshot",
		},
		[]string{"collection"},
	)
)

func init() {
	prometheus.MustRegister(queriesTotal, suggestionsOffered, collectionRecords)
}

// Query outcomes.
const (
	OutcomeHit     = "hit"
	OutcomeNoMatch = "no_match"
)

// RecordQuery counts one query against a collection.
func RecordQuery(collection model.CollectionName, results int) {
	outcome := OutcomeHit
	if results == 0 {
		outcome = OutcomeNoMatch
	}
	queriesTotal.WithLabelValues(string(collection), outcome).Inc()
}

// RecordSuggestions counts offered suggestions.
func RecordSuggestions(n int) {
	if n > 0 {
		suggestionsOffered.Add(float64(n))
	}
}

// SetCollectionSize publishes the record count of a collection snapshot.
func SetCollectionSize(collection model.CollectionName, records int) {
	collectionRecords.WithLabelValues(string(collection)).Set(float64(records))
}
