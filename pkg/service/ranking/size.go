package ranking

import (
	"regexp"
	"strings"
)

// sizeSeparators splits multi-valued size expressions such as "8 and 9",
// "8, 9", "8/9", or "8|9".
var sizeSeparators = regexp.MustCompile(`(?i)[,|/]+|\s+and\s+|\s+or\s+`)

// SplitSizes parses a possibly multi-valued size expression into
// lower-cased tokens. A nil result means no size filter applies.
func SplitSizes(requested string) []string {
	if requested == "" {
		return nil
	}

	var tokens []string
	for _, part := range sizeSeparators.Split(requested, -1) {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			tokens = append(tokens, part)
		}
	}

	return tokens
}

// MatchSize reports whether a product size satisfies the requested size
// expression. An empty request, or one that degenerates to no tokens
// (e.g. only separators), applies no filter and accepts everything.
func MatchSize(productSize, requested string) bool {
	tokens := SplitSizes(requested)
	if len(tokens) == 0 {
		return true
	}

	lowered := strings.ToLower(strings.TrimSpace(productSize))
	for _, token := range tokens {
		if lowered == token {
			return true
		}
	}

	return false
}
