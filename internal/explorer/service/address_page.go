package service

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// PageAddressTransactions returns one page of the transactions touching an address together with
// the cursors of the neighbouring pages. A page may hold more than limit transactions when
// several share the block time of a page bound.
func (e *Explorer) PageAddressTransactions(ctx context.Context, req model.AddressPageRequest) (result *model.AddressPageResult, err error) {
	start := time.Now()
	defer func() {
		e.metrics.Observe("page_address_transactions", err, start)
	}()

	mode, err := normalizeMode(req.ResolveMode)
	if err != nil {
		return nil, err
	}
	if _, err := model.ParseAcceptanceFilter(string(req.Acceptance)); err != nil {
		return nil, err
	}
	if err := ValidatePage(req.Limit, req.Before, req.After); err != nil {
		return nil, err
	}
	fields := req.Fields
	if fields == 0 {
		fields = model.AllFields
	}
	if mode.Resolves() && fields.Has(model.FieldInputs) && req.Limit > e.cfg.ResolveLimit {
		return nil, fmt.Errorf("%w: limit is capped at %d when resolving previous outpoints", model.ErrInvalidRequest, e.cfg.ResolveLimit)
	}
	script, err := e.decoder.Script(req.Address)
	if err != nil {
		return nil, err
	}

	page, err := e.paginator.Page(ctx, script, req.Limit, req.Before, req.After)
	if err != nil {
		return nil, fmt.Errorf("page address transactions: %w", err)
	}

	views, ttl, err := e.search(ctx, page.TransactionIDs, fields, mode, req.Acceptance)
	if err != nil {
		return nil, err
	}

	result = &model.AddressPageResult{
		Transactions: views,
		PageCount:    len(page.TransactionIDs),
		HasNewer:     page.HasNewer,
		HasOlder:     page.HasOlder,
		CacheMaxAge:  ttl,
	}
	if page.HasNewer {
		result.NextAfter = page.Newest
	}
	if page.HasOlder {
		result.NextBefore = page.Oldest
	}
	return result, nil
}
