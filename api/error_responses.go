package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/souqlane/search-engine/internal/errors"
)

// ErrorCode represents standardized error codes for the API
type ErrorCode string

const (
	// Client Error Codes (4xx)
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidJSON    ErrorCode = "INVALID_JSON"
	ErrorCodeInvalidQuery   ErrorCode = "INVALID_QUERY"

	// Server / upstream Error Codes (5xx)
	ErrorCodeInternalError     ErrorCode = "INTERNAL_ERROR"
	ErrorCodeSearchFailed      ErrorCode = "SEARCH_FAILED"
	ErrorCodeEmbeddingTimeout  ErrorCode = "EMBEDDING_TIMEOUT"
	ErrorCodeModelLoading      ErrorCode = "MODEL_LOADING"
	ErrorCodeProviderFailure   ErrorCode = "PROVIDER_FAILURE"
	ErrorCodeMalformedResponse ErrorCode = "MALFORMED_PROVIDER_RESPONSE"
)

// APIError represents a standardized API error response
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// SendError sends a standardized error response
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.JSON(statusCode, &APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// SendSearchError maps a search failure onto the right status code. Provider
// failure kinds keep their labels so clients can distinguish "retry later"
// (model loading) from hard failures.
func SendSearchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, internalErrors.ErrInvalidInput):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, internalErrors.ErrEmbeddingTimeout):
		SendError(c, http.StatusGatewayTimeout, ErrorCodeEmbeddingTimeout, err.Error())
	case errors.Is(err, internalErrors.ErrModelLoading):
		SendError(c, http.StatusServiceUnavailable, ErrorCodeModelLoading, err.Error())
	case errors.Is(err, internalErrors.ErrMalformedResponse):
		SendError(c, http.StatusBadGateway, ErrorCodeMalformedResponse, err.Error())
	case errors.Is(err, internalErrors.ErrProviderFailure):
		SendError(c, http.StatusBadGateway, ErrorCodeProviderFailure, err.Error())
	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, err.Error())
	}
}
