package catalog

import "github.com/hushh-labs/concierge/pkg/domain/model"

// Seed returns the built-in demo catalog, used when no catalog file is
// configured.
func Seed() []*model.Product {
	return []*model.Product{
		{
			ID:            "P001",
			Title:         "Classic White Leather Sneakers",
			Category:      "footwear",
			SubCategory:   "sneakers",
			Price:         3499,
			Size:          "9",
			Material:      "leather",
			Brand:         "Stride",
			StyleKeywords: []string{"casual", "minimal", "white", "everyday"},
		},
		{
			ID:            "P002",
			Title:         "Trail Runner Mesh Shoes",
			Category:      "footwear",
			SubCategory:   "running shoes",
			Price:         4999,
			Size:          "9",
			Material:      "mesh",
			Brand:         "Stride",
			StyleKeywords: []string{"sport", "running", "breathable"},
		},
		{
			ID:            "P003",
			Title:         "Black Suede Chelsea Boots",
			Category:      "footwear",
			SubCategory:   "boots",
			Price:         6999,
			Size:          "10",
			Material:      "suede",
			Brand:         "Harbor",
			StyleKeywords: []string{"formal", "black", "winter"},
		},
		{
			ID:            "P004",
			Title:         "Slim Fit Indigo Denim Jeans",
			Category:      "apparel",
			SubCategory:   "jeans",
			Price:         2299,
			Size:          "32",
			Material:      "denim",
			Brand:         "Loom",
			StyleKeywords: []string{"casual", "blue", "slim"},
		},
		{
			ID:            "P005",
			Title:         "Oversized Cotton Hoodie",
			Category:      "apparel",
			SubCategory:   "hoodie",
			Price:         1799,
			Size:          "L",
			Material:      "cotton",
			Brand:         "Loom",
			StyleKeywords: []string{"casual", "streetwear", "grey"},
		},
		{
			ID:            "P006",
			Title:         "Linen Summer Shirt",
			Category:      "apparel",
			SubCategory:   "shirt",
			Price:         1499,
			Size:          "M",
			Material:      "linen",
			Brand:         "Coast",
			StyleKeywords: []string{"summer", "beach", "white", "breathable"},
		},
		{
			ID:            "P007",
			Title:         "Floral Print Midi Dress",
			Category:      "apparel",
			SubCategory:   "dress",
			Price:         2899,
			Size:          "S",
			Material:      "viscose",
			Brand:         "Coast",
			StyleKeywords: []string{"floral", "party", "summer"},
		},
		{
			ID:            "P008",
			Title:         "Minimalist Steel Watch",
			Category:      "accessories",
			SubCategory:   "watch",
			Price:         5499,
			Size:          "",
			Material:      "stainless steel",
			Brand:         "Meridian",
			StyleKeywords: []string{"minimal", "silver", "formal"},
		},
		{
			ID:            "P009",
			Title:         "Tan Leather Belt",
			Category:      "accessories",
			SubCategory:   "belt",
			Price:         999,
			Size:          "34",
			Material:      "leather",
			Brand:         "Harbor",
			StyleKeywords: []string{"brown", "formal", "classic"},
		},
		{
			ID:            "P010",
			Title:         "Canvas Weekend Tote Bag",
			Category:      "accessories",
			SubCategory:   "bag",
			Price:         1299,
			Size:          "",
			Material:      "canvas",
			Brand:         "Coast",
			StyleKeywords: []string{"casual", "beige", "travel"},
		},
		{
			ID:            "P011",
			Title:         "Red Knit Scarf",
			Category:      "accessories",
			SubCategory:   "scarf",
			Price:         799,
			Size:          "",
			Material:      "wool",
			Brand:         "Meridian",
			StyleKeywords: []string{"red", "winter", "cozy"},
		},
		{
			ID:            "P012",
			Title:         "Performance Running Shorts",
			Category:      "apparel",
			SubCategory:   "shorts",
			Price:         899,
			Size:          "M",
			Material:      "polyester",
			Brand:         "Stride",
			StyleKeywords: []string{"sport", "running", "black", "lightweight"},
		},
	}
}
