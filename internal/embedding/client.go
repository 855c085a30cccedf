// Package embedding wraps the external embedding-model provider. The
// provider is a black box that accepts text or base64 image input and
// returns a fixed-length float vector; this package owns timeouts, response
// validation, and the labeled failure kinds callers branch on.
package embedding

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	internalErrors "github.com/souqlane/search-engine/internal/errors"
)

const (
	// DefaultTextTimeout bounds a text embedding request.
	DefaultTextTimeout = 30 * time.Second
	// DefaultImageTimeout bounds an image embedding request, including the
	// image download.
	DefaultImageTimeout = 60 * time.Second
)

// Client calls the embedding provider. It never retries: a provider failure
// is surfaced immediately as one of the labeled error kinds (timeout,
// model-loading, malformed-response, provider-failure) and the caller decides
// whether to try again.
type Client struct {
	endpoint     string
	apiKey       string
	httpClient   *http.Client
	textTimeout  time.Duration
	imageTimeout time.Duration
	logger       *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeouts overrides the per-call deadlines.
func WithTimeouts(text, image time.Duration) Option {
	return func(c *Client) {
		c.textTimeout = text
		c.imageTimeout = image
	}
}

// WithLogger attaches a logger. Scoring code stays silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a Client for the provider at endpoint.
func NewClient(endpoint, apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint:     endpoint,
		apiKey:       apiKey,
		httpClient:   http.DefaultClient,
		textTimeout:  DefaultTextTimeout,
		imageTimeout: DefaultImageTimeout,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type embeddingRequest struct {
	Input string `json:"input"`
}

// loadingResponse is the provider's 503 body while the model warms up.
type loadingResponse struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// GetTextEmbedding returns the embedding vector for text. The request runs
// under the text deadline and the result is validated to be a flat,
// non-empty numeric vector.
func (c *Client) GetTextEmbedding(ctx context.Context, text string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.textTimeout)
	defer cancel()
	return c.embed(ctx, "text", text, c.textTimeout)
}

// GetImageEmbedding downloads the image at imageURL, base64-encodes it, and
// returns its embedding vector. Download and embedding share the image
// deadline.
func (c *Client) GetImageEmbedding(ctx context.Context, imageURL string) ([]float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.imageTimeout)
	defer cancel()

	encoded, err := c.fetchImageBase64(ctx, imageURL)
	if err != nil {
		return nil, err
	}
	return c.embed(ctx, "image", encoded, c.imageTimeout)
}

// embed posts the input to the provider and decodes the vector.
func (c *Client) embed(ctx context.Context, operation, input string, timeout time.Duration) ([]float64, error) {
	body, err := json.Marshal(embeddingRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, internalErrors.NewEmbeddingTimeoutError(operation, timeout)
		}
		return nil, fmt.Errorf("embedding request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, internalErrors.NewEmbeddingTimeoutError(operation, timeout)
		}
		return nil, fmt.Errorf("read embedding response: %w", err)
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		var loading loadingResponse
		if json.Unmarshal(respBody, &loading) == nil && strings.Contains(strings.ToLower(loading.Error), "loading") {
			return nil, internalErrors.NewModelLoadingError(loading.EstimatedTime)
		}
		return nil, internalErrors.NewModelLoadingError(0)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, internalErrors.NewProviderError(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	vector, err := decodeVector(respBody)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("embedding computed",
		zap.String("operation", operation),
		zap.Int("dimension", len(vector)),
		zap.Duration("took", time.Since(start)))
	return vector, nil
}

// decodeVector accepts the two response shapes the provider produces: a bare
// flat numeric array, or an object wrapping one under "embedding". Anything
// else, including an empty vector, is a malformed response.
func decodeVector(body []byte) ([]float64, error) {
	var flat []float64
	if err := json.Unmarshal(body, &flat); err == nil {
		if len(flat) == 0 {
			return nil, internalErrors.NewMalformedResponseError("empty vector")
		}
		return flat, nil
	}

	var wrapped struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && len(wrapped.Embedding) > 0 {
		return wrapped.Embedding, nil
	}

	return nil, internalErrors.NewMalformedResponseError("response is not a flat numeric vector")
}

// fetchImageBase64 downloads the image and returns it base64-encoded.
func (c *Client) fetchImageBase64(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", internalErrors.NewValidationError("image_url", "invalid image URL: "+err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", internalErrors.NewEmbeddingTimeoutError("image", c.imageTimeout)
		}
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
