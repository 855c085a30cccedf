// Package textnorm provides script-aware query and document text
// normalization. Arabic text gets diacritic stripping and letter-variant
// folding so that common alternate spellings collapse to one form; Latin
// text gets lowercasing and punctuation folding.
package textnorm

import (
	"regexp"
	"strings"
)

// tashkeelRegex matches Arabic diacritic marks (fatha, damma, kasra, shadda,
// sukun, tanween and the superscript alef).
var tashkeelRegex = regexp.MustCompile("[ً-ْٰ]")

// latinStripRegex matches everything except ASCII word characters,
// whitespace, and hyphens.
var latinStripRegex = regexp.MustCompile(`[^\w\s-]`)

// whitespaceRegex matches runs of whitespace.
var whitespaceRegex = regexp.MustCompile(`\s+`)

// arabicFoldings maps Arabic letter variants to their canonical form:
// Alef variants to bare Alef, Teh Marbuta to Heh, Alef Maksura to Yeh,
// and Hamza carriers to their base letters.
var arabicFoldings = strings.NewReplacer(
	"أ", "ا", // أ -> ا
	"إ", "ا", // إ -> ا
	"آ", "ا", // آ -> ا
	"ة", "ه", // ة -> ه
	"ى", "ي", // ى -> ي
	"ؤ", "و", // ؤ -> و
	"ئ", "ي", // ئ -> ي
)

// IsArabicDominant reports whether more than 30% of the runes in text fall in
// the Arabic Unicode block.
func IsArabicDominant(text string) bool {
	total := 0
	arabic := 0
	for _, r := range text {
		total++
		if r >= 0x0600 && r <= 0x06FF {
			arabic++
		}
	}
	if total == 0 {
		return false
	}
	return float64(arabic)/float64(total) > 0.3
}

// NormalizeArabic strips tashkeel, folds letter variants, trims, and
// lowercases any Latin characters mixed into the text. It is idempotent.
func NormalizeArabic(text string) string {
	folded := tashkeelRegex.ReplaceAllString(text, "")
	folded = arabicFoldings.Replace(folded)
	return strings.ToLower(strings.TrimSpace(folded))
}

// NormalizeLatin lowercases, strips everything except word characters,
// spaces, and hyphens, and collapses whitespace runs to a single space.
func NormalizeLatin(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	lower = latinStripRegex.ReplaceAllString(lower, "")
	lower = whitespaceRegex.ReplaceAllString(lower, " ")
	return strings.TrimSpace(lower)
}

// Normalize picks the normalization path by dominant script. Empty input
// yields empty output; no input ever fails.
func Normalize(text string) string {
	if IsArabicDominant(text) {
		return NormalizeArabic(text)
	}
	return NormalizeLatin(text)
}
