package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/souqlane/search-engine/model"
)

// hybridHit accumulates one product's contributions from both branches.
type hybridHit struct {
	product   *model.Product
	breakdown model.ScoreBreakdown
	matchType model.MatchType
	matched   []string
	text      float64
	image     float64
	inText    bool
}

// HybridSearch runs the text and image branches concurrently and merges
// their rankings by product ID with weighted score fusion. Each branch gets
// double the requested limit so fusion has enough candidates to reorder.
//
// Failure policy: a failed branch degrades the call to the surviving branch
// and is reported in the result, so a flaky image provider can never
// silently suppress valid text hits. Only when every requested branch fails
// does the call itself fail.
func (s *Service) HybridSearch(ctx context.Context, textQuery, imageURL string, products []model.Product, opts HybridOptions) (HybridResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	if textQuery == "" && imageURL == "" {
		return HybridResult{}, fmt.Errorf("hybrid search requires a text query, an image URL, or both")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = s.settings.DefaultLimit
	}
	textWeight := s.settings.TextWeight
	if opts.TextWeight != nil {
		textWeight = *opts.TextWeight
	}
	imageWeight := s.settings.ImageWeight
	if opts.ImageWeight != nil {
		imageWeight = *opts.ImageWeight
	}

	var (
		textResult TextResult
		textErr    error
		vecResult  VectorResult
		vecErr     error
	)

	// Branch errors are collected, not returned from the group: one branch
	// failing must not cancel the other.
	g, gctx := errgroup.WithContext(ctx)
	if textQuery != "" {
		g.Go(func() error {
			textResult, textErr = s.SearchText(gctx, textQuery, products, TextOptions{
				Limit:    limit * 2,
				MinScore: opts.MinScore,
				Filters:  opts.Filters,
				Index:    opts.Index,
			})
			return nil
		})
	}
	if imageURL != "" {
		g.Go(func() error {
			vecResult, vecErr = s.SearchByImage(gctx, imageURL, products, VectorOptions{
				Limit:         limit * 2,
				MinSimilarity: opts.MinSimilarity,
			})
			return nil
		})
	}
	_ = g.Wait()

	if textQuery != "" && imageURL != "" && textErr != nil && vecErr != nil {
		return HybridResult{}, fmt.Errorf("both search branches failed: text: %v; image: %v", textErr, vecErr)
	}
	if textQuery != "" && imageURL == "" && textErr != nil {
		return HybridResult{}, textErr
	}
	if imageURL != "" && textQuery == "" && vecErr != nil {
		return HybridResult{}, vecErr
	}

	merged := make(map[string]*hybridHit)
	order := make([]string, 0)

	if textErr == nil {
		for i := range textResult.Results {
			hit := &textResult.Results[i]
			merged[hit.Product.ID] = &hybridHit{
				product:   hit.Product,
				breakdown: hit.Breakdown,
				matchType: hit.MatchType,
				matched:   hit.MatchedTerms,
				text:      hit.Score,
				inText:    true,
			}
			order = append(order, hit.Product.ID)
		}
	}
	if vecErr == nil {
		for i := range vecResult.Results {
			hit := &vecResult.Results[i]
			existing, ok := merged[hit.Product.ID]
			if !ok {
				existing = &hybridHit{
					product:   hit.Product,
					matchType: model.MatchSemantic,
				}
				merged[hit.Product.ID] = existing
				order = append(order, hit.Product.ID)
			}
			existing.image = hit.Score
			existing.breakdown.SemanticScore = hit.Score
		}
	}

	// A product absent from one branch just takes a zero contribution from
	// it; absence is not an extra penalty.
	results := make([]model.SearchResult, 0, len(order))
	for _, id := range order {
		hit := merged[id]
		results = append(results, model.SearchResult{
			Product:      hit.product,
			Score:        textWeight*hit.text + imageWeight*hit.image,
			MatchType:    hit.matchType,
			MatchedTerms: hit.matched,
			Breakdown:    hit.breakdown,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}

	result := HybridResult{
		Results:        results,
		CorrectedQuery: textResult.CorrectedQuery,
		Suggestions:    textResult.Suggestions,
		Debug: model.SearchDebug{
			QueryID:         queryID,
			OriginalQuery:   textQuery,
			NormalizedQuery: textResult.Debug.NormalizedQuery,
			ExpandedTerms:   textResult.Debug.ExpandedTerms,
			CorpusSize:      len(products),
			FilteredSize:    textResult.Debug.FilteredSize,
			EmbeddedCount:   vecResult.Debug.EmbeddedCount,
			TookMs:          time.Since(startTime).Milliseconds(),
		},
	}
	if textErr != nil {
		result.TextErr = textErr.Error()
		s.logger.Warn("hybrid search degraded to image-only", zap.String("query_id", queryID), zap.Error(textErr))
	}
	if vecErr != nil {
		result.ImageErr = vecErr.Error()
		s.logger.Warn("hybrid search degraded to text-only", zap.String("query_id", queryID), zap.Error(vecErr))
	}
	return result, nil
}
