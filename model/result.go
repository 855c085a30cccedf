package model

// MatchType categorizes how a product matched the query.
type MatchType string

const (
	MatchExact    MatchType = "exact"
	MatchFuzzy    MatchType = "fuzzy"
	MatchPartial  MatchType = "partial"
	MatchSemantic MatchType = "semantic"
)

// ScoreBreakdown holds the component sub-scores that produced a result's
// final score. Components that did not run for this result stay zero.
type ScoreBreakdown struct {
	BM25Score     float64 `json:"bm25_score,omitempty"`
	FuzzyScore    float64 `json:"fuzzy_score,omitempty"`
	SemanticScore float64 `json:"semantic_score,omitempty"`
}

// SearchResult is a single ranked hit. Score is unbounded (>= 0) for text
// search and a cosine similarity for vector search; hybrid scores are the
// weighted sum of the two.
type SearchResult struct {
	Product      *Product       `json:"product"`
	Score        float64        `json:"score"`
	MatchType    MatchType      `json:"match_type"`
	MatchedTerms []string       `json:"matched_terms,omitempty"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
}

// SearchDebug carries query-level diagnostics alongside the ranked hits.
// It is informational only; nothing in it feeds back into scoring.
type SearchDebug struct {
	QueryID         string   `json:"query_id"`
	OriginalQuery   string   `json:"original_query,omitempty"`
	NormalizedQuery string   `json:"normalized_query,omitempty"`
	ExpandedTerms   []string `json:"expanded_terms,omitempty"`
	CorpusSize      int      `json:"corpus_size"`
	FilteredSize    int      `json:"filtered_size"`
	EmbeddedCount   int      `json:"embedded_count,omitempty"`
	TookMs          int64    `json:"took_ms"`
}
