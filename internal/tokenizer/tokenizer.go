package tokenizer

import (
	"regexp"

	"github.com/souqlane/search-engine/internal/textnorm"
)

// whitespaceRegex matches runs of whitespace used as token separators.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// Tokenize splits already-normalized text on whitespace runs and drops empty
// tokens. Order and duplicates are preserved: term frequency counting in the
// ranker depends on both.
func Tokenize(text string) []string {
	split := whitespaceRegex.Split(text, -1)

	tokens := make([]string, 0, len(split))
	for _, s := range split {
		if s != "" {
			tokens = append(tokens, s)
		}
	}
	return tokens
}

// NormalizeAndTokenize normalizes raw text and tokenizes the result. This is
// the path every product document and query takes before scoring.
func NormalizeAndTokenize(text string) []string {
	return Tokenize(textnorm.Normalize(text))
}
