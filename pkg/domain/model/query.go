package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// DefaultBudgetMax is applied whenever the oracle omits the budget or
// returns null for it.
const DefaultBudgetMax = 10000

// StructuredQuery is the oracle's interpretation of one user message.
// It is constructed fresh each turn and never persisted as-is.
type StructuredQuery struct {
	QueryText     string
	Category      string
	BudgetMax     int
	Size          string
	AvoidKeywords []string
	NewFacts      []string
	Questions     []string
}

// UnmarshalJSON decodes the oracle's reply shape. The oracle is an external
// collaborator, so optional fields are decoded tolerantly: avoid_keywords
// may arrive as a single string, a flat list, or a list containing nested
// lists or non-string items, and all shapes normalize to the same flattened
// lower-cased token set.
func (q *StructuredQuery) UnmarshalJSON(data []byte) error {
	var raw struct {
		Query         string          `json:"query"`
		Category      string          `json:"category"`
		Budget        *int            `json:"budget"`
		Size          string          `json:"size"`
		AvoidKeywords json.RawMessage `json:"avoid_keywords"`
		NewFacts      []string        `json:"new_facts"`
		Questions     []string        `json:"questions"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return goerr.Wrap(err, "failed to decode structured query")
	}

	q.QueryText = raw.Query
	q.Category = raw.Category
	q.Size = raw.Size
	q.NewFacts = raw.NewFacts
	q.Questions = raw.Questions

	q.BudgetMax = DefaultBudgetMax
	if raw.Budget != nil {
		q.BudgetMax = *raw.Budget
	}

	if len(raw.AvoidKeywords) > 0 {
		var v any
		if err := json.Unmarshal(raw.AvoidKeywords, &v); err != nil {
			return goerr.Wrap(err, "failed to decode avoid_keywords")
		}
		q.AvoidKeywords = flattenKeywords(v)
	}

	return nil
}

// flattenKeywords reduces any combination of strings, lists, and scalar
// values to lower-cased whitespace-split tokens.
func flattenKeywords(v any) []string {
	var out []string

	switch value := v.(type) {
	case nil:
		return nil
	case string:
		out = append(out, strings.Fields(strings.ToLower(value))...)
	case []any:
		for _, item := range value {
			out = append(out, flattenKeywords(item)...)
		}
	default:
		out = append(out, strings.ToLower(fmt.Sprint(value)))
	}

	return out
}
