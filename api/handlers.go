package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/couvx/chatbot/config"
	"github.com/couvx/chatbot/internal/chat"
	apperrors "github.com/couvx/chatbot/internal/errors"
	"github.com/couvx/chatbot/internal/logger"
	"github.com/couvx/chatbot/internal/metrics"
	"github.com/couvx/chatbot/model"
	"github.com/couvx/chatbot/services"
)

// API holds dependencies for API handlers.
type API struct {
	records      services.RecordManager
	searcher     services.Searcher
	suggester    services.Suggester
	analytics    services.SearchTracker
	lookup       *chat.Lookup
	conversation *chat.Conversation
	logger       *zap.Logger
}

// Deps lists the collaborators of the HTTP API.
type Deps struct {
	Records      services.RecordManager
	Searcher     services.Searcher
	Suggester    services.Suggester
	Analytics    services.SearchTracker
	Lookup       *chat.Lookup
	Conversation *chat.Conversation
	Logger       *zap.Logger
}

// NewAPI creates a new API handler structure.
func NewAPI(deps Deps) *API {
	return &API{
		records:      deps.Records,
		searcher:     deps.Searcher,
		suggester:    deps.Suggester,
		analytics:    deps.Analytics,
		lookup:       deps.Lookup,
		conversation: deps.Conversation,
		logger:       logger.OrNop(deps.Logger),
	}
}

// NewRouter builds a gin engine with the standard middleware chain and every route.
func NewRouter(apiHandler *API, httpCfg config.HTTPConfig) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggingMiddleware(apiHandler.logger),
		metrics.Middleware(),
		CORSMiddleware(),
		RequestSizeLimitMiddleware(httpCfg.MaxBodyBytes),
	)
	SetupRoutes(router, apiHandler)
	return router
}

// SetupRoutes defines all the API routes of the lookup service.
func SetupRoutes(router *gin.Engine, apiHandler *API) {
	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	collectionRoutes := router.Group("/collections")
	{
		collectionRoutes.GET("", apiHandler.ListCollectionsHandler)
		collectionRoutes.GET("/:name/records", apiHandler.GetRecordsHandler)
		collectionRoutes.PUT("/:name/records", apiHandler.ReplaceRecordsHandler)
		collectionRoutes.POST("/:name/_search", apiHandler.SearchHandler)
		collectionRoutes.POST("/:name/_suggest", apiHandler.SuggestHandler)
	}

	router.POST("/_search", apiHandler.MultiSearchHandler)
	router.POST("/refresh", apiHandler.RefreshHandler)

	chatRoutes := router.Group("/chat")
	{
		chatRoutes.GET("/messages", apiHandler.ChatHistoryHandler)
		chatRoutes.POST("/messages", apiHandler.AskHandler)
		chatRoutes.DELETE("/messages", apiHandler.ClearChatHandler)
		chatRoutes.GET("/export", apiHandler.ExportChatHandler)
	}
}

// CollectionInfo describes a collection in listings.
type CollectionInfo struct {
	Name        model.CollectionName `json:"name"`
	Title       string               `json:"title"`
	RecordCount int                  `json:"record_count"`
}

// ListCollectionsHandler lists the collections with their current sizes.
func (api *API) ListCollectionsHandler(c *gin.Context) {
	counts := api.records.Counts()

	collections := make([]CollectionInfo, 0, len(model.CollectionNames))
	for _, name := range model.CollectionNames {
		collections = append(collections, CollectionInfo{
			Name:        name,
			Title:       name.Title(),
			RecordCount: counts[name],
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"collections": collections,
		"total":       len(collections),
	})
}

// GetRecordsHandler returns every record of a collection.
func (api *API) GetRecordsHandler(c *gin.Context) {
	name, ok := api.collectionParam(c)
	if !ok {
		return
	}

	records, err := api.records.Collection(name)
	if err != nil {
		api.sendLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"collection": name,
		"records":    records,
		"total":      len(records),
	})
}

// ReplaceRecordsHandler swaps the in-memory contents of a collection.
// Request Body: JSON array of records
func (api *API) ReplaceRecordsHandler(c *gin.Context) {
	name, ok := api.collectionParam(c)
	if !ok {
		return
	}

	var records model.Collection
	if err := c.ShouldBindJSON(&records); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if records == nil {
		records = model.Collection{}
	}

	if result := ValidateRecords(records); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.records.Replace(name, records); err != nil {
		api.sendLookupError(c, err)
		return
	}

	logger.FromContext(c.Request.Context()).Info("records replaced through the api",
		zap.String("collection", string(name)),
		zap.Int("records", len(records)))

	c.JSON(http.StatusOK, gin.H{
		"message":    "Collection '" + string(name) + "' replaced successfully",
		"collection": name,
		"total":      len(records),
	})
}

// RefreshHandler drops the current snapshot; the next read reloads every source.
func (api *API) RefreshHandler(c *gin.Context) {
	api.records.Refresh()
	counts := api.records.Counts()

	c.JSON(http.StatusOK, gin.H{
		"message": "Records reloaded",
		"counts":  counts,
	})
}

// collectionParam validates the :name path parameter. It writes the error
// response and returns false when the name is not usable.
func (api *API) collectionParam(c *gin.Context) (model.CollectionName, bool) {
	raw := c.Param("name")
	if result := ValidateCollectionName(raw); result.HasErrors() {
		SendValidationError(c, result)
		return "", false
	}

	name := model.CollectionName(raw)
	if !name.Valid() {
		SendCollectionNotFoundError(c, raw)
		return "", false
	}
	return name, true
}

// sendLookupError maps errors of the lookup path to standardized responses.
func (api *API) sendLookupError(c *gin.Context, err error) {
	var notFound *apperrors.CollectionNotFoundError
	var invalid *apperrors.ValidationError

	switch {
	case errors.As(err, &notFound):
		SendCollectionNotFoundError(c, notFound.Name)
	case errors.As(err, &invalid):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, invalid.Error(),
			ErrorDetail{Field: invalid.Field, Message: invalid.Message})
	case errors.Is(err, apperrors.ErrEmptyConversation):
		SendError(c, http.StatusNotFound, ErrorCodeEmptyConversation, "The conversation has no messages")
	default:
		_ = c.Error(err)
		SendSearchError(c, err)
	}
}
