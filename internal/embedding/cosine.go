package embedding

import (
	"math"

	internalErrors "github.com/souqlane/search-engine/internal/errors"
)

// CosineSimilarity computes dot(a,b) / (|a|*|b|). Vectors of different
// lengths are not comparable and produce a dimension-mismatch error. A zero
// norm on either side yields 0, not an error.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, internalErrors.NewDimensionMismatchError(len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
