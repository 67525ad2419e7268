package ranking_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
	"github.com/hushh-labs/concierge/pkg/service/ranking"
)

func testCatalog() []*model.Product {
	return []*model.Product{
		{
			ID:            "snkr-001",
			Title:         "Classic White Sneaker",
			Category:      "footwear",
			SubCategory:   "sneakers",
			Price:         2500,
			Size:          "9",
			Material:      "leather",
			Brand:         "Stride",
			StyleKeywords: []string{"minimal", "white", "casual"},
		},
		{
			ID:            "snkr-002",
			Title:         "Budget White Sneaker",
			Category:      "footwear",
			SubCategory:   "sneakers",
			Price:         1500,
			Size:          "9",
			Material:      "canvas",
			Brand:         "Stride",
			StyleKeywords: []string{"white", "casual"},
		},
		{
			ID:            "boot-001",
			Title:         "Black Leather Boot",
			Category:      "footwear",
			SubCategory:   "boots",
			Price:         5500,
			Size:          "10",
			Material:      "leather",
			Brand:         "Harbor",
			StyleKeywords: []string{"black", "formal"},
		},
		{
			ID:            "shrt-001",
			Title:         "White Linen Shirt",
			Category:      "apparel",
			SubCategory:   "shirt",
			Price:         1200,
			Size:          "M",
			Material:      "linen",
			Brand:         "Coast",
			StyleKeywords: []string{"white", "summer"},
		},
	}
}

func TestRankCategoryHardFilter(t *testing.T) {
	engine := ranking.New()

	results := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "white sneakers",
		Category:  "shoes",
		BudgetMax: 10000,
	})

	gt.Array(t, results).Length(2)
	for _, r := range results {
		gt.Value(t, r.Product.Category).Equal("footwear")
	}
}

func TestRankZeroScoreExcluded(t *testing.T) {
	engine := ranking.New()

	// No category and no token overlap: nothing should survive.
	results := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "trampoline",
		BudgetMax: 10000,
	})

	gt.Array(t, results).Length(0)
}

func TestRankBudgetFilter(t *testing.T) {
	engine := ranking.New()

	results := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "sneaker",
		Category:  "footwear",
		BudgetMax: 2000,
	})

	gt.Array(t, results).Length(1)
	gt.Value(t, results[0].Product.ID).Equal(types.ProductID("snkr-002"))
}

func TestRankDefaultBudgetApplied(t *testing.T) {
	engine := ranking.New()

	// BudgetMax zero means the caller skipped decoding; the default cap
	// of 10000 INR applies.
	results := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "leather boot",
		Category:  "footwear",
	})

	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, string(r.Product.ID))
	}
	gt.Array(t, ids).Has("boot-001")
}

func TestRankOrderDeterministic(t *testing.T) {
	engine := ranking.New()
	query := &model.StructuredQuery{
		QueryText: "white sneaker",
		Category:  "footwear",
		BudgetMax: 10000,
	}

	first := engine.Rank(testCatalog(), query)
	for i := 0; i < 10; i++ {
		again := engine.Rank(testCatalog(), query)
		gt.Array(t, again).Length(len(first))
		for j := range first {
			gt.Value(t, again[j].Product.ID).Equal(first[j].Product.ID)
		}
	}
}

func TestRankTieBreakByPrice(t *testing.T) {
	engine := ranking.New()

	products := []*model.Product{
		{ID: "a", Title: "Plain Tee", Category: "apparel", Price: 900},
		{ID: "b", Title: "Plain Tee", Category: "apparel", Price: 500},
		{ID: "c", Title: "Plain Tee", Category: "apparel", Price: 700},
	}

	// Identical scores from the category bonus only, so price decides.
	results := engine.Rank(products, &model.StructuredQuery{
		QueryText: "something",
		Category:  "apparel",
		BudgetMax: 10000,
	})

	gt.Array(t, results).Length(3)
	gt.Value(t, results[0].Product.ID).Equal(products[1].ID)
	gt.Value(t, results[1].Product.ID).Equal(products[2].ID)
	gt.Value(t, results[2].Product.ID).Equal(products[0].ID)
}

func TestRankScoreWeights(t *testing.T) {
	engine := ranking.New()

	products := []*model.Product{
		{
			ID:            "hit",
			Title:         "Runner Pro",
			Category:      "footwear",
			SubCategory:   "runner shoes",
			Price:         3000,
			StyleKeywords: []string{"runner", "sport"},
		},
	}

	// "runner" hits the title (+3), sub-category (+2), and one style
	// keyword (+1), plus the category bonus (+10).
	results := engine.Rank(products, &model.StructuredQuery{
		QueryText: "runner",
		Category:  "footwear",
		BudgetMax: 10000,
	})

	gt.Array(t, results).Length(1)
	gt.Value(t, results[0].Score).Equal(16)
}

func TestRankAvoidKeywordsTokenLevel(t *testing.T) {
	engine := ranking.New()

	results := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText:     "sneaker",
		Category:      "footwear",
		BudgetMax:     10000,
		AvoidKeywords: []string{"canvas"},
	})

	gt.Array(t, results).Length(2)
	for _, r := range results {
		gt.Value(t, r.Product.Material).NotEqual("canvas")
	}

	// A fragment that is not a whole token must not exclude anything.
	withFragment := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText:     "sneaker",
		Category:      "footwear",
		BudgetMax:     10000,
		AvoidKeywords: []string{"canv"},
	})
	gt.Array(t, withFragment).Length(3)
}

func TestRankColorHeuristic(t *testing.T) {
	engine := ranking.New()

	results := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "black shoes",
		Category:  "footwear",
		BudgetMax: 10000,
	})

	gt.Array(t, results).Length(1)
	gt.Value(t, results[0].Product.ID).Equal(testCatalog()[2].ID)
}

func TestRankSizeFilter(t *testing.T) {
	engine := ranking.New()

	results := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "sneaker",
		Category:  "footwear",
		BudgetMax: 10000,
		Size:      "9",
	})

	gt.Array(t, results).Length(2)
	for _, r := range results {
		gt.Value(t, r.Product.Size).Equal("9")
	}

	multi := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "boot sneaker",
		Category:  "footwear",
		BudgetMax: 10000,
		Size:      "9 and 10",
	})
	gt.Array(t, multi).Length(3)
}

func TestRankBudgetScenarios(t *testing.T) {
	engine := ranking.New()

	// Budget 2000: only the budget sneaker survives the sneaker query.
	under2000 := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "white sneaker",
		Category:  "footwear",
		BudgetMax: 2000,
	})
	gt.Array(t, under2000).Length(1)
	gt.Value(t, under2000[0].Product.Price).Equal(1500)

	// Budget 1000: nothing in footwear is that cheap.
	under1000 := engine.Rank(testCatalog(), &model.StructuredQuery{
		QueryText: "white sneaker",
		Category:  "footwear",
		BudgetMax: 1000,
	})
	gt.Array(t, under1000).Length(0)
}
