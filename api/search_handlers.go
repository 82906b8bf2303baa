package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/couvx/chatbot/internal/chat"
	"github.com/couvx/chatbot/internal/metrics"
	"github.com/couvx/chatbot/model"
)

const apiSource = "api"

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query     string `json:"query"`
	Threshold *int   `json:"threshold,omitempty"` // Optional: override the configured match threshold
}

// SuggestRequest defines the structure for suggestion queries.
type SuggestRequest struct {
	Query    string `json:"query"`
	MinRatio *int   `json:"min_ratio,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
}

// SearchResponse is returned by the single-collection search endpoint.
type SearchResponse struct {
	Collection  model.CollectionName `json:"collection"`
	Query       string               `json:"query"`
	Hits        []model.ScoredResult `json:"hits"`
	Total       int                  `json:"total"`
	Suggestions []model.Suggestion   `json:"suggestions"`
	TookMs      float64              `json:"took_ms"`
}

// MultiSearchResponse is returned by the search endpoint covering every collection.
type MultiSearchResponse struct {
	Query       string                                        `json:"query"`
	Results     map[model.CollectionName][]model.ScoredResult `json:"results"`
	Total       int                                           `json:"total"`
	Suggestions []model.Suggestion                            `json:"suggestions"`
	TookMs      float64                                       `json:"took_ms"`
}

// SuggestResponse is returned by the suggestion endpoint.
type SuggestResponse struct {
	Collection  model.CollectionName `json:"collection"`
	Query       string               `json:"query"`
	Suggestions []model.Suggestion   `json:"suggestions"`
}

// SearchHandler handles search requests to a single collection.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	name, ok := api.collectionParam(c)
	if !ok {
		return
	}

	req, ok := api.bindSearchRequest(c)
	if !ok {
		return
	}

	answer, err := api.lookup.RunWithThreshold(c.Request.Context(), req.Query, apiSource, api.threshold(req), name)
	if err != nil {
		api.sendLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{
		Collection:  name,
		Query:       answer.Query,
		Hits:        answer.Results[name],
		Total:       answer.Total(),
		Suggestions: answer.Suggestions,
		TookMs:      tookMs(answer),
	})
}

// MultiSearchHandler searches every collection at once.
// Request Body: SearchRequest
func (api *API) MultiSearchHandler(c *gin.Context) {
	req, ok := api.bindSearchRequest(c)
	if !ok {
		return
	}

	answer, err := api.lookup.RunWithThreshold(c.Request.Context(), req.Query, apiSource, api.threshold(req))
	if err != nil {
		api.sendLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, MultiSearchResponse{
		Query:       answer.Query,
		Results:     answer.Results,
		Total:       answer.Total(),
		Suggestions: answer.Suggestions,
		TookMs:      tookMs(answer),
	})
}

// SuggestHandler proposes vocabulary words of a collection close to the query.
// Request Body: SuggestRequest
func (api *API) SuggestHandler(c *gin.Context) {
	name, ok := api.collectionParam(c)
	if !ok {
		return
	}

	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}
	if result := ValidateSuggestRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	settings := api.searcher.Settings()
	minRatio := settings.SuggestMinRatio
	if req.MinRatio != nil {
		minRatio = *req.MinRatio
	}
	limit := settings.SuggestLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	collection, err := api.records.Collection(name)
	if err != nil {
		api.sendLookupError(c, err)
		return
	}

	suggestions := api.suggester.Suggest(req.Query, collection, minRatio, limit)
	metrics.RecordSuggestions(len(suggestions))

	c.JSON(http.StatusOK, SuggestResponse{
		Collection:  name,
		Query:       req.Query,
		Suggestions: suggestions,
	})
}

func (api *API) bindSearchRequest(c *gin.Context) (SearchRequest, bool) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return req, false
	}
	if result := ValidateSearchRequest(&req, api.searcher.Settings()); result.HasErrors() {
		SendValidationError(c, result)
		return req, false
	}
	return req, true
}

func (api *API) threshold(req SearchRequest) int {
	if req.Threshold != nil {
		return *req.Threshold
	}
	return api.searcher.Settings().MatchThreshold
}

func tookMs(answer chat.Answer) float64 {
	return float64(answer.Took.Microseconds()) / 1000
}
