package oracle

import "github.com/m-mizutani/gollem"

func querySchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "StructuredQuery",
		Description: "Structured interpretation of a shopping request",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"query": {
				Type:        gollem.TypeString,
				Description: "Search terms extracted from the user message",
				Required:    true,
			},
			"category": {
				Type:        gollem.TypeString,
				Description: "Product category such as footwear, apparel, or accessories. Empty if unknown.",
			},
			"budget": {
				Type:        gollem.TypeInteger,
				Description: "Maximum price in INR. Null if the user gave no budget.",
			},
			"size": {
				Type:        gollem.TypeString,
				Description: "Requested size, e.g. '9' or 'M'. Multiple sizes joined with 'and'.",
			},
			"avoid_keywords": {
				Type:        gollem.TypeArray,
				Description: "Styles or attributes the user wants to exclude",
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
			"new_facts": {
				Type:        gollem.TypeArray,
				Description: "Durable preferences worth remembering across sessions",
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
			"questions": {
				Type:        gollem.TypeArray,
				Description: "Clarifying questions, at most 3, only on the first message of a session",
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
		},
	}
}

func adviceSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "StyleAdvice",
		Description: "Styling advice grounded in the user's closet",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"advice": {
				Type:        gollem.TypeString,
				Description: "Fashion advice for the user",
				Required:    true,
			},
			"referenced_items": {
				Type:        gollem.TypeArray,
				Description: "IDs of closet items the advice refers to",
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
		},
	}
}
