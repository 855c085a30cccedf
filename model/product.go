package model

import "strings"

// Product is a read-only snapshot of one catalog item for the duration of a
// search call. The search engine never mutates it and never writes it back to
// the store that owns it.
//
// Price is a pointer because imported products frequently arrive without one;
// a product with a nil price cannot satisfy a price-range filter.
// Embedding, when present, must have the corpus-wide model dimension.
// Extra carries any additional metadata the importer attached; the search
// engine ignores it but keeps it riding along for callers.
type Product struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Category    string                 `json:"category,omitempty"`
	Brand       string                 `json:"brand,omitempty"`
	Color       string                 `json:"color,omitempty"`
	Price       *float64               `json:"price,omitempty"`
	Embedding   []float64              `json:"embedding,omitempty"`
	Extra       map[string]interface{} `json:"extra,omitempty"`
}

// SearchableText concatenates the text-bearing fields into one lowercased
// string. Absent fields contribute nothing.
func (p *Product) SearchableText() string {
	parts := make([]string, 0, 5)
	for _, s := range []string{p.Name, p.Description, p.Category, p.Brand, p.Color} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// HasEmbedding reports whether the product carries a precomputed embedding of
// the given dimension. dim <= 0 accepts any non-empty embedding.
func (p *Product) HasEmbedding(dim int) bool {
	if len(p.Embedding) == 0 {
		return false
	}
	return dim <= 0 || len(p.Embedding) == dim
}
