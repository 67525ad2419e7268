package ranking

import "strings"

// defaultSynonyms maps common category variations to the fixed taxonomy.
// This is not restrictive: a category with no entry passes through
// lower-cased, so unrecognized categories still filter without a rewrite.
func defaultSynonyms() map[string]string {
	return map[string]string{
		// Footwear variations
		"shoes": "footwear", "shoe": "footwear", "sneakers": "footwear",
		"sneaker": "footwear", "boots": "footwear", "sandals": "footwear",
		"runners": "footwear", "heels": "footwear", "loafers": "footwear",

		// Apparel variations
		"clothes": "apparel", "clothing": "apparel", "shirts": "apparel",
		"shirt": "apparel", "t-shirts": "apparel", "t-shirt": "apparel",
		"tees": "apparel", "tee": "apparel", "pants": "apparel",
		"jeans": "apparel", "dresses": "apparel", "jackets": "apparel",

		// Accessories variations
		"belts": "accessories", "bags": "accessories", "sunglasses": "accessories",
		"watches": "accessories", "jewelry": "accessories", "caps": "accessories",

		// Other common categories
		"games": "toys", "gadgets": "electronics", "phones": "electronics",
		"groceries": "food", "snacks": "food",
	}
}

// NormalizeCategory maps a free-form category word to the taxonomy.
// Empty input stays empty.
func (e *Engine) NormalizeCategory(raw string) string {
	if raw == "" {
		return ""
	}

	lowered := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := e.synonyms[lowered]; ok {
		return mapped
	}
	return lowered
}
