package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hushh-labs/concierge/pkg/domain/model"
)

func decodeQuery(t *testing.T, raw string) *model.StructuredQuery {
	t.Helper()

	var q model.StructuredQuery
	gt.NoError(t, json.Unmarshal([]byte(raw), &q)).Required()
	return &q
}

func TestStructuredQueryDecode(t *testing.T) {
	q := decodeQuery(t, `{
		"query": "white sneakers",
		"category": "footwear",
		"budget": 3000,
		"size": "9",
		"avoid_keywords": ["canvas"],
		"new_facts": ["prefers white shoes"],
		"questions": ["What size do you wear?"]
	}`)

	gt.Value(t, q.QueryText).Equal("white sneakers")
	gt.Value(t, q.Category).Equal("footwear")
	gt.Value(t, q.BudgetMax).Equal(3000)
	gt.Value(t, q.Size).Equal("9")
	gt.Array(t, q.AvoidKeywords).Length(1)
	gt.Array(t, q.NewFacts).Length(1)
	gt.Array(t, q.Questions).Length(1)
}

func TestStructuredQueryBudgetDefault(t *testing.T) {
	t.Run("null budget", func(t *testing.T) {
		q := decodeQuery(t, `{"query": "shoes", "budget": null}`)
		gt.Value(t, q.BudgetMax).Equal(model.DefaultBudgetMax)
	})

	t.Run("missing budget", func(t *testing.T) {
		q := decodeQuery(t, `{"query": "shoes"}`)
		gt.Value(t, q.BudgetMax).Equal(model.DefaultBudgetMax)
	})

	t.Run("explicit budget wins", func(t *testing.T) {
		q := decodeQuery(t, `{"query": "shoes", "budget": 2000}`)
		gt.Value(t, q.BudgetMax).Equal(2000)
	})
}

func TestStructuredQueryAvoidKeywordShapes(t *testing.T) {
	// All of these shapes must normalize to the same token set.
	shapes := map[string]string{
		"single string":   `{"query": "q", "avoid_keywords": "red blue"}`,
		"flat list":       `{"query": "q", "avoid_keywords": ["red", "blue"]}`,
		"list with space": `{"query": "q", "avoid_keywords": ["red blue"]}`,
		"nested list":     `{"query": "q", "avoid_keywords": [["red"], "blue"]}`,
		"mixed case":      `{"query": "q", "avoid_keywords": ["RED", "Blue"]}`,
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			q := decodeQuery(t, raw)
			gt.Array(t, q.AvoidKeywords).Length(2)
			gt.Array(t, q.AvoidKeywords).Has("red")
			gt.Array(t, q.AvoidKeywords).Has("blue")
		})
	}
}

func TestStructuredQueryAvoidKeywordScalar(t *testing.T) {
	q := decodeQuery(t, `{"query": "q", "avoid_keywords": [42, "Red"]}`)
	gt.Array(t, q.AvoidKeywords).Length(2)
	gt.Array(t, q.AvoidKeywords).Has("42")
	gt.Array(t, q.AvoidKeywords).Has("red")
}

func TestStructuredQueryInvalidJSON(t *testing.T) {
	var q model.StructuredQuery
	gt.Error(t, json.Unmarshal([]byte(`{"query": 42}`), &q))
}
