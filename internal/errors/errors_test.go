package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"timeout", NewEmbeddingTimeoutError("text", 30*time.Second), ErrEmbeddingTimeout},
		{"model loading", NewModelLoadingError(20), ErrModelLoading},
		{"malformed response", NewMalformedResponseError("empty vector"), ErrMalformedResponse},
		{"provider failure", NewProviderError(500, "boom"), ErrProviderFailure},
		{"dimension mismatch", NewDimensionMismatchError(384, 512), ErrDimensionMismatch},
		{"validation", NewValidationError("query", "must not be empty"), ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestTypedErrorsMatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("semantic search: %w", NewModelLoadingError(5))
	assert.ErrorIs(t, wrapped, ErrModelLoading)
	assert.NotErrorIs(t, wrapped, ErrEmbeddingTimeout)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "embedding text request timed out after 30s",
		NewEmbeddingTimeoutError("text", 30*time.Second).Error())
	assert.Equal(t, "embedding model is loading (estimated 20s)",
		NewModelLoadingError(20).Error())
	assert.Equal(t, "embedding model is loading, retry later",
		NewModelLoadingError(0).Error())
	assert.Equal(t, "embedding dimension mismatch: 384 vs 512",
		NewDimensionMismatchError(384, 512).Error())
	assert.Equal(t, "validation error for field 'query': must not be empty",
		NewValidationError("query", "must not be empty").Error())
}

func TestTypedErrorsAsTarget(t *testing.T) {
	var loadErr *ModelLoadingError
	if !errors.As(NewModelLoadingError(12), &loadErr) {
		t.Fatal("errors.As should extract ModelLoadingError")
	}
	assert.Equal(t, 12.0, loadErr.EstimatedSeconds)
}
