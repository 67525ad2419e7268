package model

import (
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// Product is an immutable catalog record. It is loaded from the catalog
// collaborator at query time and never mutated by this core.
type Product struct {
	ID            types.ProductID `json:"product_id" firestore:"product_id"`
	Title         string          `json:"title" firestore:"title"`
	Category      string          `json:"category" firestore:"category"`
	SubCategory   string          `json:"sub_category" firestore:"sub_category"`
	Price         int             `json:"price_inr" firestore:"price_inr"`
	Size          string          `json:"size" firestore:"size"`
	Material      string          `json:"material" firestore:"material"`
	Brand         string          `json:"brand" firestore:"brand"`
	StyleKeywords []string        `json:"style_keywords" firestore:"style_keywords"`
}

// Clone returns a deep copy so callers can hold results without sharing
// the keyword slice with the catalog.
func (p *Product) Clone() *Product {
	copied := *p
	if p.StyleKeywords != nil {
		copied.StyleKeywords = make([]string, len(p.StyleKeywords))
		copy(copied.StyleKeywords, p.StyleKeywords)
	}
	return &copied
}

// RankedResult is a Product plus a request-scoped relevance score and the
// reasons that contributed to it. Scores are discarded after sorting.
type RankedResult struct {
	Product *Product
	Score   int
	Reasons []string
}
