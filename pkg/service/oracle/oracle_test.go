package oracle_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
	"github.com/hushh-labs/concierge/pkg/service/oracle"
)

func TestNewRequiresClient(t *testing.T) {
	_, err := oracle.New(nil)
	gt.Error(t, err)
}

func TestBuildShoppingSystemPrompt(t *testing.T) {
	t.Run("first turn permits questions", func(t *testing.T) {
		prompt, err := oracle.BuildShoppingSystemPrompt([]string{"prefers white shoes"}, true)
		gt.NoError(t, err).Required()

		gt.Bool(t, strings.Contains(prompt, "UP TO 3 short clarifying questions")).True()
		gt.Bool(t, strings.Contains(prompt, "prefers white shoes")).True()
		gt.Bool(t, strings.Contains(prompt, "DO NOT ask any questions")).False()
	})

	t.Run("follow-up forbids questions", func(t *testing.T) {
		prompt, err := oracle.BuildShoppingSystemPrompt(nil, false)
		gt.NoError(t, err).Required()

		gt.Bool(t, strings.Contains(prompt, "DO NOT ask any questions")).True()
		gt.Bool(t, strings.Contains(prompt, "questions MUST be [] empty")).True()
		gt.Bool(t, strings.Contains(prompt, "UP TO 3 short clarifying questions")).False()
	})

	t.Run("both variants carry extraction rules", func(t *testing.T) {
		for _, firstTurn := range []bool{true, false} {
			prompt, err := oracle.BuildShoppingSystemPrompt(nil, firstTurn)
			gt.NoError(t, err).Required()

			gt.Bool(t, strings.Contains(prompt, "BUDGET")).True()
			gt.Bool(t, strings.Contains(prompt, "footwear")).True()
		}
	})
}

func TestRenderHistory(t *testing.T) {
	t.Run("no history is just the message", func(t *testing.T) {
		rendered := oracle.RenderHistory(nil, "show me boots")
		gt.Value(t, rendered).Equal("User message: show me boots")
	})

	t.Run("history precedes the message", func(t *testing.T) {
		history := []*model.ConversationTurn{
			{Role: types.RoleUser, Content: "show me sneakers"},
			{Role: types.RoleAssistant, Content: `{"query": "sneakers"}`},
		}

		rendered := oracle.RenderHistory(history, "under 2000")

		gt.Bool(t, strings.Contains(rendered, "show me sneakers")).True()
		gt.Bool(t, strings.Contains(rendered, `{"query": "sneakers"}`)).True()
		gt.Bool(t, strings.HasSuffix(rendered, "User message: under 2000")).True()
	})
}
