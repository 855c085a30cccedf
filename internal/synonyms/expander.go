// Package synonyms expands query terms through a bidirectional domain
// dictionary of fashion vocabulary (Arabic terms, transliterations, and
// English equivalents).
package synonyms

import (
	"strings"

	"github.com/souqlane/search-engine/internal/textnorm"
)

// Table maps a canonical term to its variant spellings and translations.
// Lookup is bidirectional: hitting a variant resolves to the same set as
// hitting its canonical key.
type Table map[string][]string

// Expander resolves synonym sets against an immutable table. The table is
// injected at construction so tests and tenants can carry their own
// vocabulary; Expander never mutates it.
type Expander struct {
	table Table
}

// NewExpander creates an Expander over the given table. A nil table yields an
// expander that returns every term unchanged.
func NewExpander(table Table) *Expander {
	if table == nil {
		table = Table{}
	}
	return &Expander{table: table}
}

// Synonyms returns the full synonym set for a term: the canonical form
// followed by its variants. The input is normalized first, and variant
// comparison is case-insensitive. An unknown term comes back alone.
func (e *Expander) Synonyms(term string) []string {
	normalized := textnorm.Normalize(term)

	if variants, ok := e.table[normalized]; ok {
		return append([]string{normalized}, variants...)
	}

	for canonical, variants := range e.table {
		for _, variant := range variants {
			if strings.EqualFold(variant, normalized) {
				return append([]string{canonical}, variants...)
			}
		}
	}

	return []string{normalized}
}

// ExpandQuery splits the query on whitespace and unions the synonym sets of
// every word into a deduplicated flat list. The result is a scoring input
// set, not user-facing text, so order carries no meaning.
func (e *Expander) ExpandQuery(query string) []string {
	words := strings.Fields(query)

	expanded := make([]string, 0, len(words))
	seen := make(map[string]struct{})
	for _, word := range words {
		for _, term := range e.Synonyms(word) {
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				expanded = append(expanded, term)
			}
		}
	}
	return expanded
}
