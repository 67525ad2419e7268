package model

import (
	"github.com/hushh-labs/concierge/pkg/domain/types"
)

// Agent names reported in responses.
const (
	AgentShopping = "personal_shopping_concierge"
	AgentStylist  = "fashion_stylist_agent"
)

// Error codes carried by failed responses.
const (
	ErrCodeReasoningUnavailable = "reasoning_unavailable"
	ErrCodeCatalogUnavailable   = "catalog_unavailable"
	ErrCodeStorageUnavailable   = "storage_unavailable"
	ErrCodeInvalidRequest       = "invalid_request"
)

// UnderstoodRequest echoes how the oracle interpreted the message, after
// category normalization.
type UnderstoodRequest struct {
	Category      string   `json:"category"`
	BudgetMax     int      `json:"budget_inr_max"`
	Size          string   `json:"size"`
	AvoidKeywords []string `json:"avoid_keywords"`
}

// ResultItem is one externally visible ranked product.
type ResultItem struct {
	ProductID types.ProductID `json:"product_id"`
	Title     string          `json:"title"`
	Price     int             `json:"price_inr"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Score     int             `json:"match_score"`
	Reasons   []string        `json:"pros"`
	Caveats   []string        `json:"cons"`
	Why       string          `json:"why_recommended"`
}

// ShortlistItem is one of the at-most-two persisted picks.
type ShortlistItem struct {
	ProductID types.ProductID `json:"product_id"`
	Reason    string          `json:"reason"`
}

// Response is the shopping orchestrator's externally visible result.
// On failure it carries an error code and an empty result list instead of
// propagating a raw fault.
type Response struct {
	Agent        string             `json:"agent"`
	TraceID      string             `json:"trace_id"`
	Questions    []string           `json:"clarifying_questions,omitempty"`
	Understood   *UnderstoodRequest `json:"understood_request,omitempty"`
	Results      []*ResultItem      `json:"results"`
	Shortlist    []*ShortlistItem   `json:"shortlist,omitempty"`
	MessageCount int                `json:"message_count"`
	ErrorCode    string             `json:"error_code,omitempty"`
	Error        string             `json:"error,omitempty"`
}

// Failed reports whether the response carries an error indicator.
func (r *Response) Failed() bool {
	return r.ErrorCode != ""
}
