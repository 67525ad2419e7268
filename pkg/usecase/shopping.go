package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hushh-labs/concierge/pkg/domain/model"
	"github.com/hushh-labs/concierge/pkg/domain/types"
	"github.com/hushh-labs/concierge/pkg/service/catalog"
	"github.com/hushh-labs/concierge/pkg/service/ranking"
	"github.com/hushh-labs/concierge/pkg/utils/errutil"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
)

// HandleShopping runs one turn of the shopping loop: read memory,
// interpret the message, record the exchange, search and hydrate the
// catalog, persist the shortlist and any new facts, then format the
// result. Collaborator failures come back as a well-formed response with
// an error code and empty results, never as a raw fault.
func (uc *UseCases) HandleShopping(ctx context.Context, userID types.UserID, sessionID types.SessionID, message string) *model.Response {
	traceID := uuid.NewString()

	if err := userID.Validate(); err != nil {
		return uc.failShopping(ctx, traceID, model.ErrCodeInvalidRequest, goerr.Wrap(ErrInvalidRequest, "user_id is required"))
	}
	if message == "" {
		return uc.failShopping(ctx, traceID, model.ErrCodeInvalidRequest, goerr.Wrap(ErrInvalidRequest, "message is required"))
	}

	// A request without a session falls back to one session per user.
	if sessionID == "" {
		sessionID = types.SessionID(userID)
	}

	logger := logging.From(ctx)
	logger.Info("shopping turn started",
		"trace_id", traceID,
		"user_id", userID,
		"session_id", sessionID,
	)

	facts, err := uc.readFacts(ctx, userID)
	if err != nil {
		return uc.failShopping(ctx, traceID, model.ErrCodeStorageUnavailable, err)
	}

	firstTurn := uc.sessions.IsFirstTurn(sessionID)
	history := uc.sessions.History(sessionID)

	octx, cancel := context.WithTimeout(ctx, uc.oracleTimeout)
	defer cancel()
	query, rawReply, err := uc.oracle.Interpret(octx, facts, history, firstTurn, message)
	if err != nil {
		return uc.failShopping(ctx, traceID, model.ErrCodeReasoningUnavailable, goerr.Wrap(err, ErrReasoningUnavailable.Error()))
	}

	// The exchange is recorded as a pair so a concurrent reader never
	// sees a user turn without its reply.
	uc.sessions.AppendExchange(sessionID, message, rawReply)

	ranked, err := uc.search(ctx, query)
	if err != nil {
		return uc.failShopping(ctx, traceID, model.ErrCodeCatalogUnavailable, goerr.Wrap(err, ErrCatalogUnavailable.Error()))
	}

	results, err := uc.hydrate(ctx, ranked)
	if err != nil {
		return uc.failShopping(ctx, traceID, model.ErrCodeCatalogUnavailable, goerr.Wrap(err, ErrCatalogUnavailable.Error()))
	}

	if err := uc.saveShortlist(ctx, userID, results); err != nil {
		return uc.failShopping(ctx, traceID, model.ErrCodeStorageUnavailable, goerr.Wrap(err, ErrStorageUnavailable.Error()))
	}

	if err := uc.mergeFacts(ctx, userID, query.NewFacts); err != nil {
		return uc.failShopping(ctx, traceID, model.ErrCodeStorageUnavailable, goerr.Wrap(err, ErrStorageUnavailable.Error()))
	}

	resp := uc.formatShopping(traceID, sessionID, query, results)

	logger.Info("shopping turn finished",
		"trace_id", traceID,
		"results", len(resp.Results),
		"questions", len(resp.Questions),
	)

	return resp
}

func (uc *UseCases) readFacts(ctx context.Context, userID types.UserID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()
	return uc.repo.Facts().Get(ctx, userID)
}

// search ranks the full catalog against the query and keeps the top
// window.
func (uc *UseCases) search(ctx context.Context, query *model.StructuredQuery) ([]*model.RankedResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.catalogTimeout)
	defer cancel()

	products, err := uc.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	ranked := uc.engine.Rank(products, query)
	if len(ranked) > searchLimit {
		ranked = ranked[:searchLimit]
	}
	return ranked, nil
}

// hydrate fetches full metadata per ranked product. Products that
// vanished from the catalog since ranking are dropped, preserving order
// for the rest.
func (uc *UseCases) hydrate(ctx context.Context, ranked []*model.RankedResult) ([]*model.RankedResult, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.catalogTimeout)
	defer cancel()

	hydrated := make([]*model.RankedResult, len(ranked))
	g, gctx := errgroup.WithContext(ctx)

	for i, r := range ranked {
		g.Go(func() error {
			p, err := uc.catalog.Get(gctx, r.Product.ID)
			if err != nil {
				if errors.Is(err, catalog.ErrProductNotFound) {
					return nil
				}
				return err
			}
			hydrated[i] = &model.RankedResult{
				Product: p,
				Score:   r.Score,
				Reasons: r.Reasons,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]*model.RankedResult, 0, len(hydrated))
	for _, r := range hydrated {
		if r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (uc *UseCases) saveShortlist(ctx context.Context, userID types.UserID, results []*model.RankedResult) error {
	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()

	ids := make([]types.ProductID, 0, shortlistLimit)
	for _, r := range results {
		if len(ids) == shortlistLimit {
			break
		}
		ids = append(ids, r.Product.ID)
	}

	return uc.repo.Shortlist().Put(ctx, userID, ids)
}

func (uc *UseCases) mergeFacts(ctx context.Context, userID types.UserID, newFacts []string) error {
	if len(newFacts) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, uc.storageTimeout)
	defer cancel()
	return uc.repo.Facts().Merge(ctx, userID, newFacts)
}

func (uc *UseCases) formatShopping(traceID string, sessionID types.SessionID, query *model.StructuredQuery, results []*model.RankedResult) *model.Response {
	understood := &model.UnderstoodRequest{
		Category:      uc.engine.NormalizeCategory(query.Category),
		BudgetMax:     query.BudgetMax,
		Size:          query.Size,
		AvoidKeywords: query.AvoidKeywords,
	}

	items := make([]*model.ResultItem, 0, len(results))
	for _, r := range results {
		p := r.Product

		reasons := append([]string{}, r.Reasons...)
		if size := ranking.SplitSizes(query.Size); len(size) > 0 {
			reasons = append(reasons, fmt.Sprintf("Matches size %s", query.Size))
		}
		reasons = append(reasons, fmt.Sprintf("Fits budget (₹%d)", p.Price))

		items = append(items, &model.ResultItem{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Brand:     p.Brand,
			Category:  p.Category,
			Score:     r.Score,
			Reasons:   reasons,
			Caveats:   []string{"Limited stock"},
			Why:       fmt.Sprintf("The %s is recommended because it matches your preferences.", p.Title),
		})
	}

	shortlist := make([]*model.ShortlistItem, 0, shortlistLimit)
	for _, item := range items {
		if len(shortlist) == shortlistLimit {
			break
		}
		shortlist = append(shortlist, &model.ShortlistItem{
			ProductID: item.ProductID,
			Reason:    "Best value match",
		})
	}

	return &model.Response{
		Agent:        model.AgentShopping,
		TraceID:      traceID,
		Questions:    query.Questions,
		Understood:   understood,
		Results:      items,
		Shortlist:    shortlist,
		MessageCount: uc.sessions.TurnCount(sessionID),
	}
}

func (uc *UseCases) failShopping(ctx context.Context, traceID, code string, err error) *model.Response {
	_ = errutil.Handle(ctx, err, "shopping turn failed")

	return &model.Response{
		Agent:     model.AgentShopping,
		TraceID:   traceID,
		Results:   []*model.ResultItem{},
		ErrorCode: code,
		Error:     err.Error(),
	}
}
