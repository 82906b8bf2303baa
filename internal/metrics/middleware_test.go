package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/couvx/chatbot/model"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	return r
}

func TestMetricsMiddleware_RecordsDurationAndCount(t *testing.T) {
	r := newTestRouter()
	r.GET("/collections/:name/records", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/collections/kode/records", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	requestsVal := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/collections/:name/records", "200"))
	if requestsVal < 1 {
		t.Errorf("expected http_requests_total >= 1 for the route pattern, got %f", requestsVal)
	}

	if testutil.CollectAndCount(httpRequestDuration) == 0 {
		t.Error("expected http_request_duration_seconds to have observations")
	}
}

func TestMetricsMiddleware_DifferentStatusCodes(t *testing.T) {
	r := newTestRouter()
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/error", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	tests := []struct {
		path           string
		label          string
		expectedStatus string
	}{
		{"/ok", "/ok", "200"},
		{"/error", "/error", "500"},
		{"/missing", "unknown", "404"},
	}

	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, http.NoBody)
			r.ServeHTTP(httptest.NewRecorder(), req)

			val := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", tc.label, tc.expectedStatus))
			if val < 1 {
				t.Errorf("expected requests_total for %s with status %s >= 1, got %f", tc.label, tc.expectedStatus, val)
			}
		})
	}
}

func TestRecordQuery(t *testing.T) {
	hits := queriesTotal.WithLabelValues(string(model.CollectionCodes), OutcomeHit)
	misses := queriesTotal.WithLabelValues(string(model.CollectionCodes), OutcomeNoMatch)
	beforeHits, beforeMisses := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	RecordQuery(model.CollectionCodes, 3)
	RecordQuery(model.CollectionCodes, 0)

	if got := testutil.ToFloat64(hits) - beforeHits; got != 1 {
		t.Errorf("hit counter increased by %f, want 1", got)
	}
	if got := testutil.ToFloat64(misses) - beforeMisses; got != 1 {
		t.Errorf("no_match counter increased by %f, want 1", got)
	}
}

func TestRecordSuggestionsAndCollectionSize(t *testing.T) {
	before := testutil.ToFloat64(suggestionsOffered)
	RecordSuggestions(0)
	RecordSuggestions(2)
	if got := testutil.ToFloat64(suggestionsOffered) - before; got != 2 {
		t.Errorf("suggestions counter increased by %f, want 2", got)
	}

	SetCollectionSize(model.CollectionDocumentTypes, 42)
	if got := testutil.ToFloat64(collectionRecords.WithLabelValues("jenis")); got != 42 {
		t.Errorf("collection_records = %f, want 42", got)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "unknown"},
		{"/collections/:name/_search", "/collections/:name/_search"},
		{"/health", "/health"},
	}

	for _, tc := range tests {
		if result := normalizePath(tc.input); result != tc.expected {
			t.Errorf("normalizePath(%q) = %q, want %q", tc.input, result, tc.expected)
		}
	}
}
