package synonyms

// FashionTable is the default bidirectional dictionary of marketplace
// vocabulary: Arabic fashion terms mapped to their common alternate Arabic
// spellings, transliterations, and English equivalents.
func FashionTable() Table {
	return Table{
		"هودي":    {"هودى", "hoodie", "hoodi", "sweatshirt"},
		"تيشيرت":  {"تي شيرت", "تيشرت", "tshirt", "t-shirt", "tee"},
		"بنطلون":  {"بنطال", "pants", "trousers"},
		"جينز":    {"جينس", "jeans", "denim"},
		"فستان":   {"فساتين", "dress"},
		"قميص":    {"قمصان", "shirt"},
		"جاكيت":   {"جاكت", "جاكيتة", "jacket", "coat"},
		"حذاء":    {"احذيه", "جزمه", "shoes", "sneakers"},
		"شنطه":    {"شنطة", "حقيبه", "bag", "handbag"},
		"تنوره":   {"تنورة", "جيبه", "skirt"},
		"بلوزه":   {"بلوزة", "blouse", "top"},
		"شورت":    {"shorts"},
		"عبايه":   {"عباية", "عبايات", "abaya"},
		"حجاب":    {"طرحه", "طرحة", "hijab", "scarf"},
		"بيجاما":  {"بجامه", "pajama", "pajamas", "pyjama"},
		"سويتر":   {"بلوفر", "sweater", "pullover"},
		"كاجوال":  {"casual"},
		"رياضي":   {"رياضيه", "sport", "sporty", "athletic"},
		"رسمي":    {"رسميه", "formal", "classic"},
		"اسود":    {"أسود", "black"},
		"ابيض":    {"أبيض", "white"},
		"احمر":    {"أحمر", "red"},
		"ازرق":    {"أزرق", "blue"},
	}
}
