// Package typoutil provides edit-distance matching: Levenshtein distance, a
// derived similarity ratio, dictionary nearest-neighbor lookup, and an
// Arabic-keyboard typo generator.
package typoutil

import (
	"sort"

	"github.com/souqlane/search-engine/internal/textnorm"
)

// CalculateLevenshteinDistance computes the Levenshtein distance between two
// strings: the minimum number of single-character insertions, deletions, or
// substitutions required to change one into the other. It works on runes so
// Arabic text is measured in letters, not bytes.
func CalculateLevenshteinDistance(a, b string) int {
	runesA := []rune(a)
	runesB := []rune(b)

	lenA := len(runesA)
	lenB := len(runesB)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// matrix[i][j] is the distance between the first i runes of a and the
	// first j runes of b.
	matrix := make([][]int, lenA+1)
	for i := range matrix {
		matrix[i] = make([]int, lenB+1)
	}
	for i := 0; i <= lenA; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= lenB; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			deletion := matrix[i-1][j] + 1
			insertion := matrix[i][j-1] + 1
			substitution := matrix[i-1][j-1] + cost

			matrix[i][j] = min3(deletion, insertion, substitution)
		}
	}

	return matrix[lenA][lenB]
}

// SimilarityRatio maps edit distance into [0,1]: 1 - distance/max(len).
// Two empty strings are defined as identical (ratio 1).
func SimilarityRatio(a, b string) float64 {
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	maxLen := lenA
	if lenB > maxLen {
		maxLen = lenB
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := CalculateLevenshteinDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// Match is a dictionary candidate produced by FindClosestMatches.
type Match struct {
	Word       string
	Distance   int
	Similarity float64
}

// FindClosestMatches normalizes word and ranks every dictionary entry within
// maxDistance edits of it, closest first; ties break on higher similarity.
// At most limit matches are returned.
func FindClosestMatches(word string, dictionary []string, maxDistance, limit int) []Match {
	normalized := textnorm.Normalize(word)
	wordLen := len([]rune(normalized))

	matches := make([]Match, 0)
	for _, entry := range dictionary {
		// A length difference beyond maxDistance can never pass the
		// distance filter.
		entryLen := len([]rune(entry))
		lengthDiff := entryLen - wordLen
		if lengthDiff < 0 {
			lengthDiff = -lengthDiff
		}
		if lengthDiff > maxDistance {
			continue
		}

		dist := CalculateLevenshteinDistance(normalized, entry)
		if dist > maxDistance {
			continue
		}
		matches = append(matches, Match{
			Word:       entry,
			Distance:   dist,
			Similarity: SimilarityRatio(normalized, entry),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Similarity > matches[j].Similarity
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
