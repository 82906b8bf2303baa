package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/couvx/chatbot/model"
)

// GetAnalyticsHandler handles the request to get analytics data
func (api *API) GetAnalyticsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.analytics.GetDashboardData())
}

// HealthCheckHandler reports liveness and the size of every collection, so callers
// can tell missing data apart from queries without results.
func (api *API) HealthCheckHandler(c *gin.Context) {
	counts := api.records.Counts()

	dataAvailable := true
	for _, name := range model.CollectionNames {
		if counts[name] == 0 {
			dataAvailable = false
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        "klasifikasi",
		"timestamp":      time.Now().Unix(),
		"counts":         counts,
		"data_available": dataAvailable,
	})
}
