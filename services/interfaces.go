// Package services defines the caller-facing contracts of the search
// subsystem. External code (the marketplace API, batch tooling) depends on
// these interfaces rather than on the concrete pipeline.
package services

import (
	"context"

	"github.com/souqlane/search-engine/internal/search"
	"github.com/souqlane/search-engine/internal/spell"
	"github.com/souqlane/search-engine/model"
)

// ProductSearcher ranks a borrowed product corpus against a query. The
// corpus is read-only for the duration of a call and may differ between
// calls; implementations hold no corpus state of their own.
type ProductSearcher interface {
	SearchText(ctx context.Context, query string, products []model.Product, opts search.TextOptions) (search.TextResult, error)
	SearchByImage(ctx context.Context, imageURL string, products []model.Product, opts search.VectorOptions) (search.VectorResult, error)
	SearchByEmbedding(ctx context.Context, queryVec []float64, products []model.Product, opts search.VectorOptions) (search.VectorResult, error)
	SemanticSearchText(ctx context.Context, query string, products []model.Product, opts search.VectorOptions) (search.VectorResult, error)
	HybridSearch(ctx context.Context, textQuery, imageURL string, products []model.Product, opts search.HybridOptions) (search.HybridResult, error)
}

// SpellChecker corrects a query against the dictionary derived from a
// product corpus.
type SpellChecker interface {
	SpellCheck(query string, products []model.Product) spell.CheckResult
}

// SearchService combines searching and spell checking; the HTTP layer is
// written against this interface so tests can substitute fakes.
type SearchService interface {
	ProductSearcher
	SpellChecker
}
