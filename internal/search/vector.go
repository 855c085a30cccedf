package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/souqlane/search-engine/internal/embedding"
	"github.com/souqlane/search-engine/model"
)

// SearchByImage embeds the image at imageURL and ranks the corpus by cosine
// similarity against the query embedding. Provider failures propagate as
// labeled errors; they are never folded into an empty result.
func (s *Service) SearchByImage(ctx context.Context, imageURL string, products []model.Product, opts VectorOptions) (VectorResult, error) {
	if s.embedder == nil {
		return VectorResult{}, fmt.Errorf("no embedder configured for image search")
	}

	queryVec, err := s.embedder.GetImageEmbedding(ctx, imageURL)
	if err != nil {
		return VectorResult{}, fmt.Errorf("image embedding: %w", err)
	}
	return s.SearchByEmbedding(ctx, queryVec, products, opts)
}

// SemanticSearchText embeds the query text and ranks the corpus by cosine
// similarity, for callers that want meaning-level matching without the
// lexical pipeline.
func (s *Service) SemanticSearchText(ctx context.Context, query string, products []model.Product, opts VectorOptions) (VectorResult, error) {
	if s.embedder == nil {
		return VectorResult{}, fmt.Errorf("no embedder configured for semantic search")
	}

	queryVec, err := s.embedder.GetTextEmbedding(ctx, query)
	if err != nil {
		return VectorResult{}, fmt.Errorf("text embedding: %w", err)
	}
	return s.SearchByEmbedding(ctx, queryVec, products, opts)
}

// SearchByEmbedding ranks products carrying a precomputed embedding of the
// query vector's dimension by cosine similarity. Products without an
// embedding, or with one of the wrong dimension, are excluded rather than
// failing the query: one inconsistent product must not sink the whole
// search.
func (s *Service) SearchByEmbedding(_ context.Context, queryVec []float64, products []model.Product, opts VectorOptions) (VectorResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	if len(queryVec) == 0 {
		return VectorResult{}, fmt.Errorf("query embedding is empty")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.settings.DefaultLimit
	}
	minSimilarity := s.settings.MinSimilarity
	if opts.MinSimilarity != nil {
		minSimilarity = *opts.MinSimilarity
	}

	dim := len(queryVec)
	embedded := 0
	hits := make([]model.SearchResult, 0, len(products))
	for i := range products {
		p := &products[i]
		if !p.HasEmbedding(dim) {
			continue
		}
		embedded++

		similarity, err := embedding.CosineSimilarity(queryVec, p.Embedding)
		if err != nil {
			// Unreachable after the dimension check, but a corrupt product
			// should be skipped, not fatal.
			continue
		}
		if similarity < minSimilarity {
			continue
		}

		hits = append(hits, model.SearchResult{
			Product:   p,
			Score:     similarity,
			MatchType: model.MatchSemantic,
			Breakdown: model.ScoreBreakdown{SemanticScore: similarity},
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	result := VectorResult{
		Results: hits,
		Debug: model.SearchDebug{
			QueryID:       queryID,
			CorpusSize:    len(products),
			EmbeddedCount: embedded,
			TookMs:        time.Since(startTime).Milliseconds(),
		},
	}

	s.logger.Debug("vector search completed",
		zap.String("query_id", queryID),
		zap.Int("corpus_size", len(products)),
		zap.Int("embedded_count", embedded),
		zap.Int("hits", len(hits)),
		zap.Int64("took_ms", result.Debug.TookMs))
	return result, nil
}
