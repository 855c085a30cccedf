package typoutil

// KeyboardLayout maps a rune to the runes on physically adjacent keys.
// Layouts are injected so tests and other locales can supply their own.
type KeyboardLayout map[rune][]rune

// DefaultArabicKeyboard returns the adjacency table for the standard Arabic
// (101-key) layout. Only letter keys are mapped; a rune absent from the table
// simply generates no substitution candidates.
func DefaultArabicKeyboard() KeyboardLayout {
	return KeyboardLayout{
		'ض': {'ص', 'ظ'},
		'ص': {'ض', 'ث'},
		'ث': {'ص', 'ق'},
		'ق': {'ث', 'ف', 'ك'},
		'ف': {'ق', 'غ'},
		'غ': {'ف', 'ع'},
		'ع': {'غ', 'ه'},
		'ه': {'ع', 'خ', 'ة'},
		'خ': {'ه', 'ح'},
		'ح': {'خ', 'ج'},
		'ج': {'ح', 'د'},
		'د': {'ج', 'ذ'},
		'ذ': {'د'},
		'ش': {'س'},
		'س': {'ش', 'ي'},
		'ي': {'س', 'ب', 'ى'},
		'ى': {'ي', 'ر'},
		'ب': {'ي', 'ل'},
		'ل': {'ب', 'ا'},
		'ا': {'ل', 'ت'},
		'ت': {'ا', 'ن'},
		'ن': {'ت', 'م'},
		'م': {'ن', 'ك'},
		'ك': {'م', 'ق', 'ط'},
		'ط': {'ك', 'ظ'},
		'ظ': {'ط', 'ض', 'ز'},
		'ز': {'ظ', 'و'},
		'و': {'ز', 'ة', 'ر'},
		'ة': {'و', 'ه'},
		'ر': {'و', 'ى'},
	}
}

// KeyboardVariants generates typo-correction candidates for word by
// substituting each rune with its keyboard neighbors, one candidate per
// substitution. The original word leads the list; candidates are not
// deduplicated.
func KeyboardVariants(word string, layout KeyboardLayout) []string {
	runes := []rune(word)
	variants := []string{word}

	for i, r := range runes {
		neighbors, ok := layout[r]
		if !ok {
			continue
		}
		for _, neighbor := range neighbors {
			candidate := make([]rune, len(runes))
			copy(candidate, runes)
			candidate[i] = neighbor
			variants = append(variants, string(candidate))
		}
	}
	return variants
}
