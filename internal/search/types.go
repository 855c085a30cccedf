package search

import (
	"github.com/souqlane/search-engine/index"
	"github.com/souqlane/search-engine/internal/spell"
	"github.com/souqlane/search-engine/model"
)

// TextOptions tunes one text search call. Nil pointer fields fall back to
// the service settings; a zero Limit falls back to the default limit.
type TextOptions struct {
	Limit    int          `json:"limit,omitempty"`
	MinScore *float64     `json:"min_score,omitempty"`
	Filters  *Filters     `json:"filters,omitempty"`
	Index    *index.Index `json:"-"` // Optional prebuilt index for this corpus snapshot
}

// VectorOptions tunes one vector search call.
type VectorOptions struct {
	Limit         int      `json:"limit,omitempty"`
	MinSimilarity *float64 `json:"min_similarity,omitempty"`
}

// HybridOptions tunes one hybrid search call. Branch weights default to the
// service settings (0.5/0.5 out of the box).
type HybridOptions struct {
	Limit         int          `json:"limit,omitempty"`
	MinScore      *float64     `json:"min_score,omitempty"`
	MinSimilarity *float64     `json:"min_similarity,omitempty"`
	TextWeight    *float64     `json:"text_weight,omitempty"`
	ImageWeight   *float64     `json:"image_weight,omitempty"`
	Filters       *Filters     `json:"filters,omitempty"`
	Index         *index.Index `json:"-"`
}

// TextResult is the outcome of a text search. CorrectedQuery and Suggestions
// are informational: the spell-checked form is returned to the caller but
// never substituted into scoring, so what was ranked is exactly what was
// typed.
type TextResult struct {
	Results        []model.SearchResult `json:"results"`
	CorrectedQuery string               `json:"corrected_query,omitempty"`
	Suggestions    []string             `json:"suggestions,omitempty"`
	Corrections    []spell.Correction   `json:"corrections,omitempty"`
	Debug          model.SearchDebug    `json:"debug"`
}

// VectorResult is the outcome of a vector search.
type VectorResult struct {
	Results []model.SearchResult `json:"results"`
	Debug   model.SearchDebug    `json:"debug"`
}

// HybridResult is the outcome of a hybrid search. When one branch fails the
// call degrades to the surviving branch and the failure is reported here
// rather than silently dropped.
type HybridResult struct {
	Results        []model.SearchResult `json:"results"`
	CorrectedQuery string               `json:"corrected_query,omitempty"`
	Suggestions    []string             `json:"suggestions,omitempty"`
	TextErr        string               `json:"text_error,omitempty"`
	ImageErr       string               `json:"image_error,omitempty"`
	Debug          model.SearchDebug    `json:"debug"`
}
