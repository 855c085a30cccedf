// Package errors defines the failure taxonomy of the search engine: provider
// failures from the embedding service, corpus/model inconsistencies, and
// input validation errors. Each condition has a sentinel for errors.Is checks
// and a typed error carrying context.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for common error conditions
var (
	// ErrEmbeddingTimeout is returned when an embedding request exceeds its deadline
	ErrEmbeddingTimeout = errors.New("embedding request timed out")

	// ErrModelLoading is returned when the embedding provider reports it is still loading
	ErrModelLoading = errors.New("embedding model is loading")

	// ErrMalformedResponse is returned when the provider response is not a usable vector
	ErrMalformedResponse = errors.New("malformed embedding response")

	// ErrProviderFailure is returned for any other non-2xx provider response
	ErrProviderFailure = errors.New("embedding provider failure")

	// ErrDimensionMismatch is returned when two vectors of different lengths are compared
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// EmbeddingTimeoutError reports that a provider call ran past its deadline.
type EmbeddingTimeoutError struct {
	Operation string
	Timeout   time.Duration
}

func (e *EmbeddingTimeoutError) Error() string {
	return fmt.Sprintf("embedding %s request timed out after %s", e.Operation, e.Timeout)
}

func (e *EmbeddingTimeoutError) Is(target error) bool {
	return target == ErrEmbeddingTimeout
}

// NewEmbeddingTimeoutError creates a new EmbeddingTimeoutError
func NewEmbeddingTimeoutError(operation string, timeout time.Duration) *EmbeddingTimeoutError {
	return &EmbeddingTimeoutError{Operation: operation, Timeout: timeout}
}

// ModelLoadingError reports a 503/loading state from the provider. The call
// may be retried later; this subsystem never retries on its own.
type ModelLoadingError struct {
	EstimatedSeconds float64
}

func (e *ModelLoadingError) Error() string {
	if e.EstimatedSeconds > 0 {
		return fmt.Sprintf("embedding model is loading (estimated %.0fs)", e.EstimatedSeconds)
	}
	return "embedding model is loading, retry later"
}

func (e *ModelLoadingError) Is(target error) bool {
	return target == ErrModelLoading
}

// NewModelLoadingError creates a new ModelLoadingError
func NewModelLoadingError(estimatedSeconds float64) *ModelLoadingError {
	return &ModelLoadingError{EstimatedSeconds: estimatedSeconds}
}

// MalformedResponseError reports a provider response that was not a flat,
// non-empty numeric vector.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed embedding response: %s", e.Reason)
}

func (e *MalformedResponseError) Is(target error) bool {
	return target == ErrMalformedResponse
}

// NewMalformedResponseError creates a new MalformedResponseError
func NewMalformedResponseError(reason string) *MalformedResponseError {
	return &MalformedResponseError{Reason: reason}
}

// ProviderError reports a hard (non-loading) provider failure.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider returned status %d: %s", e.StatusCode, e.Body)
}

func (e *ProviderError) Is(target error) bool {
	return target == ErrProviderFailure
}

// NewProviderError creates a new ProviderError
func NewProviderError(statusCode int, body string) *ProviderError {
	return &ProviderError{StatusCode: statusCode, Body: body}
}

// DimensionMismatchError reports an attempt to compare vectors of different
// lengths. This signals a corpus/model inconsistency the caller must fix
// upstream, so it is a hard failure rather than a zero similarity.
type DimensionMismatchError struct {
	LenA, LenB int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: %d vs %d", e.LenA, e.LenB)
}

func (e *DimensionMismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// NewDimensionMismatchError creates a new DimensionMismatchError
func NewDimensionMismatchError(lenA, lenB int) *DimensionMismatchError {
	return &DimensionMismatchError{LenA: lenA, LenB: lenB}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
