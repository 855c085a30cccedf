package search

import (
	"strings"

	"github.com/souqlane/search-engine/internal/textnorm"
	"github.com/souqlane/search-engine/model"
)

// PriceRange restricts products to Min <= price <= Max.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Filters narrow the corpus before scoring. Zero-valued fields are inactive.
type Filters struct {
	Category   string      `json:"category,omitempty"`
	PriceRange *PriceRange `json:"price_range,omitempty"`
	Colors     []string    `json:"colors,omitempty"`
}

// applyFilters returns the products passing every active filter, preserving
// corpus order. Category and color comparisons are normalized so Arabic
// variant spellings and Latin case differences both match.
func applyFilters(products []model.Product, filters *Filters) []*model.Product {
	kept := make([]*model.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if matchesFilters(p, filters) {
			kept = append(kept, p)
		}
	}
	return kept
}

func matchesFilters(p *model.Product, filters *Filters) bool {
	if filters == nil {
		return true
	}

	if filters.Category != "" {
		if !strings.EqualFold(textnorm.Normalize(p.Category), textnorm.Normalize(filters.Category)) {
			return false
		}
	}

	if filters.PriceRange != nil {
		// Products without a price cannot satisfy a price-range filter.
		if p.Price == nil || *p.Price < filters.PriceRange.Min || *p.Price > filters.PriceRange.Max {
			return false
		}
	}

	if len(filters.Colors) > 0 {
		productColor := textnorm.Normalize(p.Color)
		matched := false
		for _, color := range filters.Colors {
			if strings.EqualFold(productColor, textnorm.Normalize(color)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}
