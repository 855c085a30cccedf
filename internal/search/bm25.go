package search

import (
	"math"

	"github.com/souqlane/search-engine/model"
)

// BM25 parameters, fixed by the relevance model.
const (
	bm25K1 = 1.5  // Controls term frequency saturation
	bm25B  = 0.75 // Controls how much effect document length has
)

// document is one product's tokenized searchable text within a scoring
// collection.
type document struct {
	product *model.Product
	tokens  []string
	terms   map[string]bool
	length  int
}

// BM25Ranker scores documents against query terms within one collection
// snapshot. IDF values are cached per term for the lifetime of the ranker;
// the cache only ever holds what a recomputation would produce, so cached
// and uncached scoring are identical.
type BM25Ranker struct {
	docs         []*document
	avgDocLength float64
	docFreqFn    func(term string) int
	idfCache     map[string]float64
}

// NewBM25Ranker creates a ranker over a tokenized collection. docFreqFn may
// supply document frequencies from a prebuilt index; when nil, frequencies
// are counted by scanning the collection. The collection must be non-empty.
func NewBM25Ranker(docs []*document, docFreqFn func(term string) int) *BM25Ranker {
	totalLength := 0
	for _, doc := range docs {
		totalLength += doc.length
	}

	r := &BM25Ranker{
		docs:         docs,
		avgDocLength: float64(totalLength) / float64(len(docs)),
		docFreqFn:    docFreqFn,
		idfCache:     make(map[string]float64),
	}
	if r.docFreqFn == nil {
		r.docFreqFn = r.countDocFrequency
	}
	return r
}

// countDocFrequency scans the collection for documents containing term.
func (r *BM25Ranker) countDocFrequency(term string) int {
	count := 0
	for _, doc := range r.docs {
		if doc.terms[term] {
			count++
		}
	}
	return count
}

// idf computes ln((N - n_t + 0.5) / (n_t + 0.5) + 1). The +0.5 smoothing
// keeps it defined for terms in every document and terms in none.
func (r *BM25Ranker) idf(term string) float64 {
	if cached, ok := r.idfCache[term]; ok {
		return cached
	}
	n := float64(len(r.docs))
	nt := float64(r.docFreqFn(term))
	value := math.Log((n-nt+0.5)/(nt+0.5) + 1)
	r.idfCache[term] = value
	return value
}

// Score sums the BM25 contribution of every distinct query term present in
// the document and returns the matched terms alongside the score.
func (r *BM25Ranker) Score(queryTerms []string, doc *document) (float64, []string) {
	score := 0.0
	matched := make([]string, 0, len(queryTerms))
	seen := make(map[string]bool, len(queryTerms))

	for _, term := range queryTerms {
		if seen[term] {
			continue
		}
		seen[term] = true

		tf := 0.0
		for _, token := range doc.tokens {
			if token == term {
				tf++
			}
		}
		if tf == 0 {
			continue
		}

		norm := tf + bm25K1*(1-bm25B+bm25B*float64(doc.length)/r.avgDocLength)
		score += r.idf(term) * tf * (bm25K1 + 1) / norm
		matched = append(matched, term)
	}
	return score, matched
}
