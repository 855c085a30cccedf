// Package api exposes the search pipeline over HTTP. The API is stateless:
// every request carries its own product corpus, and the handlers are thin
// adapters between JSON and the search service.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souqlane/search-engine/services"
)

// API holds dependencies for the HTTP handlers, primarily the search service.
type API struct {
	service services.SearchService
}

// NewAPI creates a new API handler structure.
func NewAPI(service services.SearchService) *API {
	return &API{service: service}
}

// SetupRoutes defines all the API routes for the search engine.
func SetupRoutes(router *gin.Engine, service services.SearchService) {
	apiHandler := NewAPI(service)

	router.GET("/health", apiHandler.HealthCheckHandler)

	searchRoutes := router.Group("/search")
	{
		searchRoutes.POST("/text", apiHandler.TextSearchHandler)         // BM25 + fuzzy ranking
		searchRoutes.POST("/image", apiHandler.ImageSearchHandler)       // Cosine similarity over embeddings
		searchRoutes.POST("/semantic", apiHandler.SemanticSearchHandler) // Text query via embedding space
		searchRoutes.POST("/hybrid", apiHandler.HybridSearchHandler)     // Concurrent text + image fusion
		searchRoutes.POST("/spellcheck", apiHandler.SpellCheckHandler)   // Correction only, no ranking
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
