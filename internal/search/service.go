// Package search implements the ranking pipeline: BM25 and fuzzy scoring
// over a borrowed product corpus, cosine-similarity vector search over
// precomputed embeddings, and weighted fusion of the two.
package search

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/souqlane/search-engine/config"
	"github.com/souqlane/search-engine/index"
	"github.com/souqlane/search-engine/internal/spell"
	"github.com/souqlane/search-engine/internal/synonyms"
	"github.com/souqlane/search-engine/internal/textnorm"
	"github.com/souqlane/search-engine/internal/tokenizer"
	"github.com/souqlane/search-engine/internal/typoutil"
	"github.com/souqlane/search-engine/model"
)

// Embedder produces fixed-length embedding vectors for text or image input.
type Embedder interface {
	GetTextEmbedding(ctx context.Context, text string) ([]float64, error)
	GetImageEmbedding(ctx context.Context, imageURL string) ([]float64, error)
}

// Service orchestrates the search pipeline. All scoring is pure and operates
// on per-call corpus snapshots, so one Service instance is safe for
// concurrent queries.
type Service struct {
	settings  *config.Settings
	expander  *synonyms.Expander
	corrector *spell.Corrector
	embedder  Embedder
	logger    *zap.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger attaches a structured logger. The default is a no-op logger so
// scoring stays silent in tests.
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *Service) { s.logger = logger }
}

// WithSynonyms replaces the default fashion synonym table.
func WithSynonyms(table synonyms.Table) ServiceOption {
	return func(s *Service) { s.expander = synonyms.NewExpander(table) }
}

// WithKeyboard replaces the default Arabic keyboard adjacency table used for
// typo correction.
func WithKeyboard(layout typoutil.KeyboardLayout) ServiceOption {
	return func(s *Service) { s.corrector = spell.NewCorrector(layout) }
}

// NewService creates a search Service. The embedder may be nil when only
// text search is used; vector and hybrid searches then fail with a clear
// error instead of a panic.
func NewService(settings *config.Settings, embedder Embedder, opts ...ServiceOption) (*Service, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}

	table := synonyms.FashionTable()
	if len(settings.Synonyms) > 0 {
		table = synonyms.Table(settings.Synonyms)
	}

	layout := typoutil.DefaultArabicKeyboard()
	if len(settings.Keyboard) > 0 {
		layout = keyboardFromConfig(settings.Keyboard)
	}

	s := &Service{
		settings:  settings,
		expander:  synonyms.NewExpander(table),
		corrector: spell.NewCorrector(layout),
		embedder:  embedder,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// keyboardFromConfig converts the YAML string adjacency map into a rune
// layout. Multi-rune neighbor strings contribute each of their runes.
func keyboardFromConfig(adjacency map[string][]string) typoutil.KeyboardLayout {
	layout := make(typoutil.KeyboardLayout, len(adjacency))
	for key, neighbors := range adjacency {
		runes := make([]rune, 0, len(neighbors))
		for _, neighbor := range neighbors {
			runes = append(runes, []rune(neighbor)...)
		}
		for _, r := range key {
			layout[r] = runes
			break // only the first rune of the key is meaningful
		}
	}
	return layout
}

// SearchText runs the text pipeline: normalize and expand the query for
// telemetry, spell-check it against the filtered corpus dictionary, then
// score every filtered product with a weighted blend of BM25 and fuzzy
// matching. Scoring always uses the query as typed; expansion and
// correction are returned to the caller, not substituted in. An empty
// corpus or an all-filtered corpus yields empty results and a nil error.
func (s *Service) SearchText(ctx context.Context, query string, products []model.Product, opts TextOptions) (TextResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	limit := opts.Limit
	if limit <= 0 {
		limit = s.settings.DefaultLimit
	}
	minScore := s.settings.MinScore
	if opts.MinScore != nil {
		minScore = *opts.MinScore
	}

	normalizedQuery := textnorm.Normalize(query)
	expandedTerms := s.expander.ExpandQuery(query)

	result := TextResult{
		Results: []model.SearchResult{},
		Debug: model.SearchDebug{
			QueryID:         queryID,
			OriginalQuery:   query,
			NormalizedQuery: normalizedQuery,
			ExpandedTerms:   expandedTerms,
			CorpusSize:      len(products),
		},
	}

	queryTokens := tokenizer.Tokenize(normalizedQuery)
	if len(queryTokens) == 0 {
		result.Debug.TookMs = time.Since(startTime).Milliseconds()
		return result, nil
	}

	filtered := applyFilters(products, opts.Filters)
	result.Debug.FilteredSize = len(filtered)
	if len(filtered) == 0 {
		result.Debug.TookMs = time.Since(startTime).Milliseconds()
		return result, nil
	}

	docs, dict, docFreqFn := buildCollection(filtered, opts.Index)

	spellCheck := s.corrector.Check(query, dict)
	if len(spellCheck.Corrections) > 0 {
		result.CorrectedQuery = spellCheck.Corrected
		result.Suggestions = spellCheck.Suggestions
		result.Corrections = spellCheck.Corrections
	}

	ranker := NewBM25Ranker(docs, docFreqFn)
	fuzzy := NewFuzzyScorer(s.settings.FuzzyThreshold)

	hits := make([]model.SearchResult, 0, len(docs))
	for _, doc := range docs {
		bm25Score, matched := ranker.Score(queryTokens, doc)
		fuzzyScore := fuzzy.Score(query, doc.product)

		score := s.settings.BM25Weight*bm25Score + s.settings.FuzzyWeight*fuzzyScore
		if score < minScore {
			continue
		}

		hits = append(hits, model.SearchResult{
			Product:      doc.product,
			Score:        score,
			MatchType:    classifyTextMatch(queryTokens, matched, fuzzyScore),
			MatchedTerms: matched,
			Breakdown: model.ScoreBreakdown{
				BM25Score:  bm25Score,
				FuzzyScore: fuzzyScore,
			},
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}

	result.Results = hits
	result.Debug.TookMs = time.Since(startTime).Milliseconds()

	s.logger.Debug("text search completed",
		zap.String("query_id", queryID),
		zap.String("query", query),
		zap.Strings("expanded_terms", expandedTerms),
		zap.Int("corpus_size", len(products)),
		zap.Int("filtered_size", len(filtered)),
		zap.Int("hits", len(hits)),
		zap.Int64("took_ms", result.Debug.TookMs))
	return result, nil
}

// buildCollection tokenizes the filtered corpus, reusing a prebuilt index
// when it covers the whole corpus. The spelling dictionary always reflects
// only the filtered products, so correction candidates are words a
// surviving product actually contains.
func buildCollection(filtered []*model.Product, ix *index.Index) ([]*document, *spell.Dictionary, func(term string) int) {
	docs := make([]*document, 0, len(filtered))
	allTokens := make([]string, 0, len(filtered)*8)

	for _, p := range filtered {
		var tokens []string
		if ix != nil {
			if indexed, ok := ix.Tokens(p.ID); ok {
				tokens = indexed
			}
		}
		if tokens == nil {
			tokens = tokenizer.NormalizeAndTokenize(p.SearchableText())
		}

		terms := make(map[string]bool, len(tokens))
		for _, token := range tokens {
			terms[token] = true
		}
		docs = append(docs, &document{
			product: p,
			tokens:  tokens,
			terms:   terms,
			length:  len(tokens),
		})
		allTokens = append(allTokens, tokens...)
	}

	// The index's postings and dictionary describe the full corpus; they are
	// only interchangeable with the filtered collection when nothing was
	// filtered out.
	if ix != nil && ix.Size() == len(filtered) {
		return docs, ix.Dictionary(), ix.DocFrequency
	}
	return docs, spell.NewDictionary(allTokens), nil
}

// classifyTextMatch buckets a hit by how it matched: a full substring or
// all-terms BM25 hit is exact, a subset of terms is partial, and a hit
// carried only by fuzzy word similarity is fuzzy.
func classifyTextMatch(queryTokens, matched []string, fuzzyScore float64) model.MatchType {
	if fuzzyScore == 1.0 {
		return model.MatchExact
	}

	distinct := make(map[string]bool, len(queryTokens))
	for _, token := range queryTokens {
		distinct[token] = true
	}
	switch {
	case len(matched) == 0:
		return model.MatchFuzzy
	case len(matched) == len(distinct):
		return model.MatchExact
	default:
		return model.MatchPartial
	}
}

// SpellCheck corrects a query against the dictionary of the given corpus.
// It is the standalone form of the correction SearchText performs.
func (s *Service) SpellCheck(query string, products []model.Product) spell.CheckResult {
	allTokens := make([]string, 0, len(products)*8)
	for i := range products {
		allTokens = append(allTokens, tokenizer.NormalizeAndTokenize(products[i].SearchableText())...)
	}
	return s.corrector.Check(query, spell.NewDictionary(allTokens))
}
