package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/souqlane/search-engine/internal/search"
	"github.com/souqlane/search-engine/model"
)

// TextSearchRequest defines the structure for text search queries.
type TextSearchRequest struct {
	Query    string             `json:"query" binding:"required"`
	Products []model.Product    `json:"products"`
	Options  search.TextOptions `json:"options"`
}

// ImageSearchRequest defines the structure for image similarity queries.
type ImageSearchRequest struct {
	ImageURL string               `json:"image_url"`
	Products []model.Product      `json:"products"`
	Options  search.VectorOptions `json:"options"`

	// Embedding, when set, bypasses the provider and searches directly
	// with the given query vector.
	Embedding []float64 `json:"embedding,omitempty"`
}

// SemanticSearchRequest defines the structure for embedding-space text queries.
type SemanticSearchRequest struct {
	Query    string               `json:"query" binding:"required"`
	Products []model.Product      `json:"products"`
	Options  search.VectorOptions `json:"options"`
}

// HybridSearchRequest defines the structure for fused text + image queries.
type HybridSearchRequest struct {
	Query    string               `json:"query"`
	ImageURL string               `json:"image_url"`
	Products []model.Product      `json:"products"`
	Options  search.HybridOptions `json:"options"`
}

// SpellCheckRequest defines the structure for standalone spell checking.
type SpellCheckRequest struct {
	Query    string          `json:"query" binding:"required"`
	Products []model.Product `json:"products"`
}

// TextSearchHandler handles BM25 + fuzzy ranked text search.
func (api *API) TextSearchHandler(c *gin.Context) {
	var req TextSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	result, err := api.service.SearchText(c.Request.Context(), req.Query, req.Products, req.Options)
	if err != nil {
		SendSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ImageSearchHandler handles cosine-similarity search against product
// embeddings, from either an image URL or a precomputed query embedding.
func (api *API) ImageSearchHandler(c *gin.Context) {
	var req ImageSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}
	if req.ImageURL == "" && len(req.Embedding) == 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "either image_url or embedding is required")
		return
	}

	var (
		result search.VectorResult
		err    error
	)
	if len(req.Embedding) > 0 {
		result, err = api.service.SearchByEmbedding(c.Request.Context(), req.Embedding, req.Products, req.Options)
	} else {
		result, err = api.service.SearchByImage(c.Request.Context(), req.ImageURL, req.Products, req.Options)
	}
	if err != nil {
		SendSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SemanticSearchHandler handles embedding-space search for a text query.
func (api *API) SemanticSearchHandler(c *gin.Context) {
	var req SemanticSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	result, err := api.service.SemanticSearchText(c.Request.Context(), req.Query, req.Products, req.Options)
	if err != nil {
		SendSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HybridSearchHandler handles concurrent text + image search with score fusion.
func (api *API) HybridSearchHandler(c *gin.Context) {
	var req HybridSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}
	if req.Query == "" && req.ImageURL == "" {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "at least one of query or image_url is required")
		return
	}

	result, err := api.service.HybridSearch(c.Request.Context(), req.Query, req.ImageURL, req.Products, req.Options)
	if err != nil {
		SendSearchError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SpellCheckHandler handles standalone query spell checking against the
// corpus dictionary.
func (api *API) SpellCheckHandler(c *gin.Context) {
	var req SpellCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidJSON, "Invalid request body: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, api.service.SpellCheck(req.Query, req.Products))
}
