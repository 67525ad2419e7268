package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hushh-labs/concierge/pkg/domain/model"
)

// Score weights for each match kind.
const (
	categoryBonus     = 10
	titleTokenScore   = 3
	subCategoryScore  = 2
	styleKeywordScore = 1
)

func defaultColors() map[string]struct{} {
	return toSet([]string{
		"white", "black", "red", "blue", "green", "yellow", "pink",
		"purple", "brown", "grey", "gray", "beige", "gold", "silver",
	})
}

func defaultStopWords() map[string]struct{} {
	return toSet([]string{
		"i", "want", "need", "looking", "for", "a", "an", "the",
		"some", "show", "me", "of", "size", "with",
	})
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Engine filters and scores catalog entries against a structured query.
// It is pure and stateless after construction; one instance serves any
// number of concurrent requests.
type Engine struct {
	synonyms  map[string]string
	colors    map[string]struct{}
	stopWords map[string]struct{}
}

type Option func(*Engine)

// WithSynonyms replaces the category synonym table.
func WithSynonyms(synonyms map[string]string) Option {
	return func(e *Engine) {
		if len(synonyms) > 0 {
			e.synonyms = synonyms
		}
	}
}

// WithColors replaces the recognized color set.
func WithColors(colors []string) Option {
	return func(e *Engine) {
		if len(colors) > 0 {
			e.colors = toSet(colors)
		}
	}
}

// WithStopWords replaces the query-token stop-word list.
func WithStopWords(words []string) Option {
	return func(e *Engine) {
		if len(words) > 0 {
			e.stopWords = toSet(words)
		}
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		synonyms:  defaultSynonyms(),
		colors:    defaultColors(),
		stopWords: defaultStopWords(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// haystack is the lower-cased searchable text of a product: title,
// sub-category, material, and style keywords joined by spaces.
func haystack(p *model.Product) string {
	parts := []string{
		strings.ToLower(p.Title),
		strings.ToLower(p.SubCategory),
		strings.ToLower(p.Material),
	}
	for _, kw := range p.StyleKeywords {
		parts = append(parts, strings.ToLower(kw))
	}
	return strings.Join(parts, " ")
}

// Rank runs the filter and scoring pipeline over the catalog and returns
// survivors ordered by descending score, then ascending price, with
// catalog order as the final tie-break. The result is deterministic for
// identical inputs.
func (e *Engine) Rank(products []*model.Product, query *model.StructuredQuery) []*model.RankedResult {
	category := e.NormalizeCategory(query.Category)
	queryTokens := strings.Fields(strings.ToLower(query.QueryText))

	var queryColors []string
	for _, token := range queryTokens {
		if _, ok := e.colors[token]; ok {
			queryColors = append(queryColors, token)
		}
	}

	budget := query.BudgetMax
	if budget == 0 {
		budget = model.DefaultBudgetMax
	}

	var results []*model.RankedResult
	for _, p := range products {
		productCategory := strings.ToLower(p.Category)

		// Hard category filter: exact match on the normalized taxonomy.
		if category != "" && productCategory != category {
			continue
		}

		if !MatchSize(p.Size, query.Size) {
			continue
		}

		text := haystack(p)
		if excluded(text, query.AvoidKeywords) {
			continue
		}

		// Color heuristic: a query that names a color only accepts
		// products mentioning at least one of those colors.
		if len(queryColors) > 0 && !containsAnyColor(text, queryColors) {
			continue
		}

		score, reasons := e.scoreProduct(p, category, productCategory, queryTokens)

		// Zero-relevance matches are noise, not results.
		if score > 0 && p.Price <= budget {
			results = append(results, &model.RankedResult{
				Product: p,
				Score:   score,
				Reasons: reasons,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.Price < results[j].Product.Price
	})

	return results
}

// excluded reports whether any whole haystack token equals any avoid
// token. Substring matches on fragments must not trigger, to avoid
// over-exclusion from partial-word collisions.
func excluded(text string, avoid []string) bool {
	if len(avoid) == 0 {
		return false
	}

	tokens := toSet(strings.Fields(text))
	for _, a := range avoid {
		for _, avoidToken := range strings.Fields(strings.ToLower(a)) {
			if _, ok := tokens[avoidToken]; ok {
				return true
			}
		}
	}

	return false
}

func containsAnyColor(text string, colors []string) bool {
	for _, c := range colors {
		if strings.Contains(text, c) {
			return true
		}
	}
	return false
}

func (e *Engine) scoreProduct(p *model.Product, queryCategory, productCategory string, queryTokens []string) (int, []string) {
	score := 0
	var reasons []string

	// Category-matched items score even with no keyword overlap.
	if queryCategory != "" && productCategory == queryCategory {
		score += categoryBonus
		reasons = append(reasons, fmt.Sprintf("Matches category %q", queryCategory))
	}

	title := strings.ToLower(p.Title)
	subCategory := strings.ToLower(p.SubCategory)

	var matched []string
	for _, token := range queryTokens {
		if _, stop := e.stopWords[token]; stop {
			continue
		}

		tokenScore := 0
		if strings.Contains(title, token) {
			tokenScore += titleTokenScore
		}
		if strings.Contains(subCategory, token) {
			tokenScore += subCategoryScore
		}
		for _, kw := range p.StyleKeywords {
			// One token may score against multiple keywords.
			if strings.Contains(strings.ToLower(kw), token) {
				tokenScore += styleKeywordScore
			}
		}

		if tokenScore > 0 {
			score += tokenScore
			matched = append(matched, token)
		}
	}

	if len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Matches %q", strings.Join(matched, " ")))
	}

	return score, reasons
}
