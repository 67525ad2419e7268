package oracle

var (
	BuildShoppingSystemPrompt = buildShoppingSystemPrompt
	RenderHistory             = renderHistory
)
