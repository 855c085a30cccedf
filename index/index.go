// Package index precomputes per-corpus search structures: an inverted
// term-to-product-ID index, per-product token lists, and the spelling
// dictionary. Building one is optional; coordinators fall back to tokenizing
// on the fly, and the indexed path must score identically to the direct one.
package index

import (
	"github.com/souqlane/search-engine/internal/spell"
	"github.com/souqlane/search-engine/internal/tokenizer"
	"github.com/souqlane/search-engine/model"
)

// Index is a read-only snapshot of search structures for one corpus. It is
// never mutated after Build returns, so concurrent queries may share it
// without locking.
type Index struct {
	postings map[string][]string          // term -> product IDs containing it
	tokens   map[string][]string          // product ID -> ordered token list
	terms    map[string]map[string]bool   // product ID -> distinct term set
	dict     *spell.Dictionary
}

// Build tokenizes every product's searchable text and assembles the inverted
// index and spelling dictionary.
func Build(products []model.Product) *Index {
	ix := &Index{
		postings: make(map[string][]string),
		tokens:   make(map[string][]string, len(products)),
		terms:    make(map[string]map[string]bool, len(products)),
	}

	allTokens := make([]string, 0, len(products)*8)
	for i := range products {
		p := &products[i]
		tokens := tokenizer.NormalizeAndTokenize(p.SearchableText())
		ix.tokens[p.ID] = tokens
		allTokens = append(allTokens, tokens...)

		termSet := make(map[string]bool, len(tokens))
		for _, token := range tokens {
			if !termSet[token] {
				termSet[token] = true
				ix.postings[token] = append(ix.postings[token], p.ID)
			}
		}
		ix.terms[p.ID] = termSet
	}

	ix.dict = spell.NewDictionary(allTokens)
	return ix
}

// Tokens returns the ordered token list for a product, or false if the
// product was not in the corpus the index was built from.
func (ix *Index) Tokens(productID string) ([]string, bool) {
	tokens, ok := ix.tokens[productID]
	return tokens, ok
}

// HasTerm reports whether the product's searchable text contains term.
func (ix *Index) HasTerm(productID, term string) bool {
	return ix.terms[productID][term]
}

// ProductIDs returns the IDs of products containing term, in corpus order.
func (ix *Index) ProductIDs(term string) []string {
	return ix.postings[term]
}

// DocFrequency returns the number of products containing term.
func (ix *Index) DocFrequency(term string) int {
	return len(ix.postings[term])
}

// Dictionary returns the corpus spelling dictionary.
func (ix *Index) Dictionary() *spell.Dictionary {
	return ix.dict
}

// Size returns the number of indexed products.
func (ix *Index) Size() int {
	return len(ix.tokens)
}
