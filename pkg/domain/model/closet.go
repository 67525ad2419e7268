package model

import (
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// ClosetItem is one garment the user already owns. The stylist references
// closet items when giving advice.
type ClosetItem struct {
	ID            types.ProductID `json:"product_id" firestore:"product_id"`
	Title         string          `json:"title" firestore:"title"`
	Category      string          `json:"category" firestore:"category"`
	Color         string          `json:"color,omitempty" firestore:"color"`
	StyleKeywords []string        `json:"style_keywords,omitempty" firestore:"style_keywords"`
}

// StyleAdvice is the stylist oracle's reply: free-text advice plus the
// closet items it referred to.
type StyleAdvice struct {
	Advice          string
	ReferencedItems []*ClosetItem
}

// StyleResponse is the stylist agent's externally visible result. It keeps
// the same envelope fields as Response but carries advice instead of
// ranked products.
type StyleResponse struct {
	Agent           string        `json:"agent"`
	TraceID         string        `json:"trace_id"`
	Intent          string        `json:"intent"`
	Advice          string        `json:"advice"`
	ReferencedItems []*ClosetItem `json:"owned_items_referenced"`
	Error           string        `json:"error,omitempty"`
}
