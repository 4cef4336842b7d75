package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"golang.org/x/sync/errgroup"
)

// SearchTransactions looks transactions up by id or by the blue score of their accepting blocks.
func (e *Explorer) SearchTransactions(ctx context.Context, req model.SearchRequest) (result *model.SearchResult, err error) {
	start := time.Now()
	defer func() {
		e.metrics.Observe("search_transactions", err, start)
	}()

	fields, mode, err := e.validateSearch(req)
	if err != nil {
		return nil, err
	}

	ids := req.TransactionIDs
	if req.BlueScoreRange != nil {
		ids, err = e.transactions.AcceptedTransactionIDs(ctx, e.cfg.Network, req.BlueScoreRange.Gte, req.BlueScoreRange.Lt)
		if err != nil {
			return nil, fmt.Errorf("query accepted transactions: %w", err)
		}
		if err := e.checkBatchSize(len(ids), fields, mode); err != nil {
			return nil, err
		}
	}

	views, ttl, err := e.search(ctx, ids, fields, mode, req.Acceptance)
	if err != nil {
		return nil, err
	}
	return &model.SearchResult{Transactions: views, CacheMaxAge: ttl}, nil
}

func (e *Explorer) validateSearch(req model.SearchRequest) (model.Fields, model.ResolveMode, error) {
	mode, err := normalizeMode(req.ResolveMode)
	if err != nil {
		return 0, "", err
	}
	if _, err := model.ParseAcceptanceFilter(string(req.Acceptance)); err != nil {
		return 0, "", err
	}
	fields := req.Fields
	if fields == 0 {
		fields = model.AllFields
	}

	switch {
	case req.BlueScoreRange != nil && len(req.TransactionIDs) > 0:
		return 0, "", fmt.Errorf("%w: transaction ids and accepting blue scores are mutually exclusive", model.ErrInvalidRequest)
	case req.BlueScoreRange != nil:
		r := req.BlueScoreRange
		if r.Lt <= r.Gte {
			return 0, "", fmt.Errorf("%w: empty accepting blue score range", model.ErrInvalidRequest)
		}
		if r.Lt-r.Gte > e.cfg.BlueScoreRangeLimit {
			return 0, "", fmt.Errorf("%w: accepting blue score range exceeds %d", model.ErrInvalidRequest, e.cfg.BlueScoreRangeLimit)
		}
	case len(req.TransactionIDs) == 0:
		return 0, "", fmt.Errorf("%w: transaction ids or accepting blue scores are required", model.ErrInvalidRequest)
	default:
		if err := e.checkBatchSize(len(req.TransactionIDs), fields, mode); err != nil {
			return 0, "", err
		}
		for _, id := range req.TransactionIDs {
			if err := validateTransactionID(id); err != nil {
				return 0, "", err
			}
		}
	}
	return fields, mode, nil
}

// checkBatchSize rejects batches above the id search limit or, when previous outpoints of the
// inputs are resolved, above the resolve limit.
func (e *Explorer) checkBatchSize(n int, fields model.Fields, mode model.ResolveMode) error {
	if n > e.cfg.IDSearchLimit {
		return fmt.Errorf("%w: too many transactions, limit is %d", model.ErrInvalidRequest, e.cfg.IDSearchLimit)
	}
	if mode.Resolves() && fields.Has(model.FieldInputs) && n > e.cfg.ResolveLimit {
		return fmt.Errorf("%w: transactions are limited to %d when resolving previous outpoints", model.ErrInvalidRequest, e.cfg.ResolveLimit)
	}
	return nil
}

// search loads and projects the transactions with the given ids, newest first. Child rows are
// only queried for the selected fields. The returned cache lifetime is that of the freshest
// transaction, or zero when none can be aged.
func (e *Explorer) search(
	ctx context.Context,
	ids []string,
	fields model.Fields,
	mode model.ResolveMode,
	filter model.AcceptanceFilter,
) ([]model.TransactionView, int, error) {
	if len(ids) == 0 {
		return []model.TransactionView{}, 0, nil
	}

	txs, err := e.transactions.Transactions(ctx, e.cfg.Network, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("query transactions: %w", err)
	}
	if len(txs) == 0 {
		return []model.TransactionView{}, 0, nil
	}
	found := make([]string, 0, len(txs))
	for _, tx := range txs {
		found = append(found, tx.TransactionID)
	}

	var (
		blockHashes map[string][]string
		inputs      map[string][]model.TransactionInput
		outputs     map[string][]model.TransactionOutput
		acceptances map[string]model.Acceptance
	)
	g, gctx := errgroup.WithContext(ctx)
	if fields.Has(model.FieldBlockHash) {
		g.Go(func() error {
			var err error
			blockHashes, err = e.transactions.TransactionBlockHashes(gctx, e.cfg.Network, found)
			if err != nil {
				return fmt.Errorf("query transaction block hashes: %w", err)
			}
			return nil
		})
	}
	if fields.Has(model.FieldInputs) {
		g.Go(func() error {
			var err error
			inputs, err = e.resolvedInputs(gctx, found, mode)
			return err
		})
	}
	if fields.Has(model.FieldOutputs) {
		g.Go(func() error {
			var err error
			outputs, err = e.transactions.TransactionOutputs(gctx, e.cfg.Network, found)
			if err != nil {
				return fmt.Errorf("query transaction outputs: %w", err)
			}
			return nil
		})
	}
	g.Go(func() error {
		var err error
		acceptances, err = e.acceptances.AcceptanceBatch(gctx, found)
		if err != nil {
			return fmt.Errorf("resolve acceptances: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].BlockTime > txs[j].BlockTime
	})

	views := make([]model.TransactionView, 0, len(txs))
	ttl := 0
	for _, tx := range txs {
		acceptance := acceptances[tx.TransactionID]
		if !filter.Match(acceptance) {
			continue
		}
		tx.BlockHashes = blockHashes[tx.TransactionID]
		tx.Inputs = inputs[tx.TransactionID]
		tx.Outputs = outputs[tx.TransactionID]
		views = append(views, model.NewTransactionView(tx, acceptance, fields, mode))

		if age, ok := e.cache.TTL(acceptance.BlueScore, blockTimePtr(tx.BlockTime)); ok && (ttl == 0 || age < ttl) {
			ttl = age
		}
	}
	return views, ttl, nil
}

// resolvedInputs loads the inputs of all transactions and resolves their previous outpoints with
// a single resolver call.
func (e *Explorer) resolvedInputs(ctx context.Context, ids []string, mode model.ResolveMode) (map[string][]model.TransactionInput, error) {
	byTransaction, err := e.transactions.TransactionInputs(ctx, e.cfg.Network, ids)
	if err != nil {
		return nil, fmt.Errorf("query transaction inputs: %w", err)
	}

	flat := make([]model.TransactionInput, 0, len(byTransaction))
	for _, id := range ids {
		flat = append(flat, byTransaction[id]...)
	}
	resolved, err := e.outpoints.Resolve(ctx, flat, mode)
	if err != nil {
		return nil, fmt.Errorf("resolve previous outpoints: %w", err)
	}

	result := make(map[string][]model.TransactionInput, len(byTransaction))
	for _, in := range resolved {
		result[in.TransactionID] = append(result[in.TransactionID], in)
	}
	return result, nil
}
