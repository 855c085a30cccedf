// Package spell corrects query words against a corpus-derived dictionary,
// trying cheap keyboard-adjacency candidates before falling back to
// nearest-neighbor edit-distance lookup.
package spell

import (
	"strings"

	"github.com/souqlane/search-engine/internal/textnorm"
	"github.com/souqlane/search-engine/internal/typoutil"
)

// keyboardConfidence is the fixed confidence assigned to a correction found
// through keyboard-adjacency substitution.
const keyboardConfidence = 0.9

// Dictionary is the set of distinct tokens derivable from one corpus
// snapshot. It lives no longer than the snapshot and is never mutated after
// construction.
type Dictionary struct {
	words   []string
	present map[string]struct{}
}

// NewDictionary builds a dictionary from a token list, deduplicating while
// preserving first-seen order.
func NewDictionary(tokens []string) *Dictionary {
	d := &Dictionary{
		words:   make([]string, 0, len(tokens)),
		present: make(map[string]struct{}, len(tokens)),
	}
	for _, token := range tokens {
		if _, ok := d.present[token]; ok {
			continue
		}
		d.present[token] = struct{}{}
		d.words = append(d.words, token)
	}
	return d
}

// Contains reports whether word is in the dictionary.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.present[word]
	return ok
}

// Words returns the dictionary entries. Callers must not mutate the slice.
func (d *Dictionary) Words() []string { return d.words }

// Size returns the number of distinct entries.
func (d *Dictionary) Size() int { return len(d.words) }

// Correction records one corrected query word.
type Correction struct {
	Original   string  `json:"original"`
	Corrected  string  `json:"corrected"`
	Confidence float64 `json:"confidence"`
}

// CheckResult is the outcome of spell-checking one query.
type CheckResult struct {
	Corrected   string       `json:"corrected"`
	Corrections []Correction `json:"corrections,omitempty"`
	Suggestions []string     `json:"suggestions,omitempty"`
	Confidence  float64      `json:"confidence"`
}

// Corrector spell-checks queries word by word. The keyboard layout is
// injected so the typo model can be swapped or disabled in tests.
type Corrector struct {
	layout        typoutil.KeyboardLayout
	maxDistance   int
	maxCandidates int
	minSimilarity float64
}

// NewCorrector creates a Corrector with the default edit-distance window
// (2 edits, 5 candidates) and acceptance threshold (similarity > 0.7).
func NewCorrector(layout typoutil.KeyboardLayout) *Corrector {
	return &Corrector{
		layout:        layout,
		maxDistance:   2,
		maxCandidates: 5,
		minSimilarity: 0.7,
	}
}

// Check corrects each word of query against the dictionary. Words already in
// the dictionary pass through untouched; otherwise the first keyboard-typo
// candidate found in the dictionary wins, then the closest edit-distance
// match above the similarity threshold. Uncorrectable words stay as typed.
// The overall confidence is the mean of per-word correction confidences, or
// 1.0 when nothing was corrected.
func (c *Corrector) Check(query string, dict *Dictionary) CheckResult {
	words := strings.Fields(query)

	corrected := make([]string, 0, len(words))
	corrections := make([]Correction, 0)

	for _, word := range words {
		normalized := textnorm.Normalize(word)
		if normalized == "" || dict.Contains(normalized) {
			corrected = append(corrected, word)
			continue
		}

		if replacement, ok := c.keyboardCorrection(normalized, dict); ok {
			corrected = append(corrected, replacement)
			corrections = append(corrections, Correction{
				Original:   word,
				Corrected:  replacement,
				Confidence: keyboardConfidence,
			})
			continue
		}

		matches := typoutil.FindClosestMatches(normalized, dict.Words(), c.maxDistance, c.maxCandidates)
		if len(matches) > 0 && matches[0].Similarity > c.minSimilarity {
			corrected = append(corrected, matches[0].Word)
			corrections = append(corrections, Correction{
				Original:   word,
				Corrected:  matches[0].Word,
				Confidence: matches[0].Similarity,
			})
			continue
		}

		corrected = append(corrected, word)
	}

	result := CheckResult{
		Corrected:   strings.Join(corrected, " "),
		Corrections: corrections,
		Confidence:  1.0,
	}
	if len(corrections) > 0 {
		total := 0.0
		for _, corr := range corrections {
			total += corr.Confidence
		}
		result.Confidence = total / float64(len(corrections))
		result.Suggestions = []string{result.Corrected}
	}
	return result
}

// keyboardCorrection tries every keyboard-adjacency candidate for word and
// accepts the first one present in the dictionary.
func (c *Corrector) keyboardCorrection(word string, dict *Dictionary) (string, bool) {
	for _, candidate := range typoutil.KeyboardVariants(word, c.layout) {
		if candidate == word {
			continue
		}
		if dict.Contains(candidate) {
			return candidate, true
		}
	}
	return "", false
}
