package search

import (
	"strings"

	"github.com/souqlane/search-engine/internal/textnorm"
	"github.com/souqlane/search-engine/internal/typoutil"
	"github.com/souqlane/search-engine/model"
)

// FuzzyScorer scores a product by best-word-alignment similarity between the
// query words and the product's searchable text.
type FuzzyScorer struct {
	threshold float64
}

// NewFuzzyScorer creates a scorer that accepts per-word similarities above
// threshold.
func NewFuzzyScorer(threshold float64) *FuzzyScorer {
	return &FuzzyScorer{threshold: threshold}
}

// Score returns 1.0 when the normalized query is a substring of the
// product's normalized searchable text. Otherwise each query word
// contributes its best similarity against any document word, if that best
// exceeds the threshold, and the sum is divided by the TOTAL query word
// count, not the matched count. Multi-word queries where only some words
// match are penalized on purpose; changing the divisor changes ranking
// behavior callers depend on.
func (f *FuzzyScorer) Score(query string, p *model.Product) float64 {
	normalizedQuery := textnorm.Normalize(query)
	normalizedText := textnorm.Normalize(p.SearchableText())

	if normalizedQuery == "" || normalizedText == "" {
		return 0
	}
	if strings.Contains(normalizedText, normalizedQuery) {
		return 1.0
	}

	queryWords := strings.Fields(normalizedQuery)
	docWords := strings.Fields(normalizedText)

	sum := 0.0
	matchedWords := 0
	for _, queryWord := range queryWords {
		best := 0.0
		for _, docWord := range docWords {
			if ratio := typoutil.SimilarityRatio(queryWord, docWord); ratio > best {
				best = ratio
			}
		}
		if best > f.threshold {
			sum += best
			matchedWords++
		}
	}

	if matchedWords == 0 {
		return 0
	}
	return sum / float64(len(queryWords))
}
