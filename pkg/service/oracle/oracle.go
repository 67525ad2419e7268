package oracle

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/hushh-labs/concierge/pkg/domain/interfaces"
	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
)

//go:embed prompt/shopping_system.md
var shoppingSystemPromptTmpl string

//go:embed prompt/stylist_system.md
var stylistSystemPromptTmpl string

var (
	shoppingSystemPrompt = template.Must(template.New("shopping_system").Parse(shoppingSystemPromptTmpl))
	stylistSystemPrompt  = template.Must(template.New("stylist_system").Parse(stylistSystemPromptTmpl))
)

// Client turns free-form user messages into structured queries and style
// advice via an LLM session with a JSON response schema.
type Client struct {
	llm gollem.LLMClient
}

var _ interfaces.ReasoningGateway = (*Client)(nil)

func New(llm gollem.LLMClient) (*Client, error) {
	if llm == nil {
		return nil, goerr.New("llm client is required")
	}
	return &Client{llm: llm}, nil
}

func buildShoppingSystemPrompt(facts []string, firstTurn bool) (string, error) {
	factsJSON, err := json.Marshal(facts)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal user facts")
	}

	data := struct {
		Facts     string
		FirstTurn bool
	}{
		Facts:     string(factsJSON),
		FirstTurn: firstTurn,
	}

	var buf bytes.Buffer
	if err := shoppingSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute shopping system prompt template")
	}

	return buf.String(), nil
}

// renderHistory flattens prior turns into the prompt so follow-up
// messages are interpreted against the running conversation.
func renderHistory(history []*model.ConversationTurn, message string) string {
	var sb strings.Builder

	if len(history) > 0 {
		sb.WriteString("Conversation so far:\n")
		for _, turn := range history {
			sb.WriteString(string(turn.Role))
			sb.WriteString(": ")
			sb.WriteString(turn.Content)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("User message: ")
	sb.WriteString(message)
	return sb.String()
}

// Interpret extracts a structured query from the user message. It
// returns the parsed query together with the raw model reply so the
// caller can record the exchange verbatim.
func (c *Client) Interpret(ctx context.Context, facts []string, history []*model.ConversationTurn, firstTurn bool, message string) (*model.StructuredQuery, string, error) {
	systemPrompt, err := buildShoppingSystemPrompt(facts, firstTurn)
	if err != nil {
		return nil, "", err
	}

	session, err := c.llm.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(querySchema()),
		gollem.WithSessionSystemPrompt(systemPrompt),
	)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to create query session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(renderHistory(history, message)))
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to generate structured query")
	}
	if len(resp.Texts) == 0 {
		return nil, "", goerr.New("query generation returned empty result")
	}

	raw := resp.Texts[0]

	var query model.StructuredQuery
	if err := json.Unmarshal([]byte(raw), &query); err != nil {
		return nil, "", goerr.Wrap(err, "failed to parse structured query JSON",
			goerr.V("response", raw),
		)
	}

	// The ranking engine needs search terms even when the model skips
	// the query field.
	if query.QueryText == "" {
		query.QueryText = message
	}

	logging.From(ctx).Debug("interpreted user message",
		"query", query.QueryText,
		"category", query.Category,
		"budget", query.BudgetMax,
		"questions", len(query.Questions),
	)

	return &query, raw, nil
}

// AdviseStyle asks the model for styling advice grounded in the closet.
func (c *Client) AdviseStyle(ctx context.Context, closet []*model.ClosetItem, message string) (*model.StyleAdvice, error) {
	closetSummary := "Empty Wardrobe"
	if len(closet) > 0 {
		raw, err := json.Marshal(closet)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to marshal closet")
		}
		closetSummary = string(raw)
	}

	var buf bytes.Buffer
	if err := stylistSystemPrompt.Execute(&buf, struct{ Closet string }{Closet: closetSummary}); err != nil {
		return nil, goerr.Wrap(err, "failed to execute stylist system prompt template")
	}

	session, err := c.llm.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(adviceSchema()),
		gollem.WithSessionSystemPrompt(buf.String()),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create stylist session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(message))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate style advice")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("style advice generation returned empty result")
	}

	var reply struct {
		Advice          string   `json:"advice"`
		ReferencedItems []string `json:"referenced_items"`
	}
	if err := json.Unmarshal([]byte(resp.Texts[0]), &reply); err != nil {
		return nil, goerr.Wrap(err, "failed to parse style advice JSON",
			goerr.V("response", resp.Texts[0]),
		)
	}

	advice := &model.StyleAdvice{Advice: reply.Advice}
	if advice.Advice == "" {
		advice.Advice = "I'm having trouble finding the perfect match right now, but a classic look always works!"
	}

	// Map referenced IDs back to the owned items for the UI.
	for _, item := range closet {
		for _, id := range reply.ReferencedItems {
			if string(item.ID) == id {
				advice.ReferencedItems = append(advice.ReferencedItems, item)
				break
			}
		}
	}

	return advice, nil
}
