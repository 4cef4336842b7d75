package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultIDSearchLimit       = 1000
	DefaultResolveLimit        = 50
	DefaultBlueScoreRangeLimit = 2000
	DefaultNodeTimeout         = 10 * time.Second
)

var transactionIDPattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Config holds the request limits of the Explorer.
type Config struct {
	Network model.Network
	// IDSearchLimit caps the number of ids in one search.
	IDSearchLimit int
	// ResolveLimit caps the number of transactions whose previous outpoints are resolved in one request.
	ResolveLimit        int
	BlueScoreRangeLimit uint64
	NodeTimeout         time.Duration
}

func (c Config) withDefaults() Config {
	if c.IDSearchLimit <= 0 {
		c.IDSearchLimit = DefaultIDSearchLimit
	}
	if c.ResolveLimit <= 0 {
		c.ResolveLimit = DefaultResolveLimit
	}
	if c.BlueScoreRangeLimit == 0 {
		c.BlueScoreRangeLimit = DefaultBlueScoreRangeLimit
	}
	if c.NodeTimeout <= 0 {
		c.NodeTimeout = DefaultNodeTimeout
	}
	return c
}

// Dependencies are the collaborators of the Explorer.
type Dependencies struct {
	Transactions TransactionRepository
	Node         NodeClient
	Decoder      ScriptDecoder
	Tip          TipProvider
	Paginator    Paginator
	Outpoints    OutpointResolver
	Acceptances  AcceptanceResolver
	Cache        CachePolicy
	Metrics      ExplorerMetrics
}

// Explorer answers transaction and address queries.
type Explorer struct {
	logger       *zap.Logger
	cfg          Config
	transactions TransactionRepository
	node         NodeClient
	decoder      ScriptDecoder
	tip          TipProvider
	paginator    Paginator
	outpoints    OutpointResolver
	acceptances  AcceptanceResolver
	cache        CachePolicy
	metrics      ExplorerMetrics
}

func NewExplorer(cfg Config, deps Dependencies, logger *zap.Logger) (*Explorer, error) {
	switch {
	case deps.Transactions == nil:
		return nil, errors.New("explorer transaction repository is required")
	case deps.Decoder == nil:
		return nil, errors.New("explorer script decoder is required")
	case deps.Tip == nil:
		return nil, errors.New("explorer tip provider is required")
	case deps.Paginator == nil:
		return nil, errors.New("explorer paginator is required")
	case deps.Outpoints == nil:
		return nil, errors.New("explorer outpoint resolver is required")
	case deps.Acceptances == nil:
		return nil, errors.New("explorer acceptance resolver is required")
	case deps.Cache == nil:
		return nil, errors.New("explorer cache policy is required")
	case deps.Metrics == nil:
		return nil, errors.New("explorer metrics is required")
	}
	cfg = cfg.withDefaults()
	return &Explorer{
		logger:       logger.Named("explorer").With(zap.String("network", string(cfg.Network))),
		cfg:          cfg,
		transactions: deps.Transactions,
		node:         deps.Node,
		decoder:      deps.Decoder,
		tip:          deps.Tip,
		paginator:    deps.Paginator,
		outpoints:    deps.Outpoints,
		acceptances:  deps.Acceptances,
		cache:        deps.Cache,
		metrics:      deps.Metrics,
	}, nil
}

// VirtualChainBlueScore returns the tip blue score seen by the tip tracker.
func (e *Explorer) VirtualChainBlueScore() uint64 {
	return e.tip.BlueScore()
}

// GetTransaction returns one transaction. It prefers the node when a containing block is known
// and falls back to the index.
func (e *Explorer) GetTransaction(ctx context.Context, req model.GetTransactionRequest) (result *model.TransactionResult, err error) {
	start := time.Now()
	defer func() {
		e.metrics.Observe("get_transaction", err, start)
	}()

	if err := validateTransactionID(req.TransactionID); err != nil {
		return nil, err
	}
	if req.BlockHashHint != "" && !transactionIDPattern.MatchString(req.BlockHashHint) {
		return nil, fmt.Errorf("%w: malformed block hash %q", model.ErrInvalidRequest, req.BlockHashHint)
	}
	mode, err := normalizeMode(req.ResolveMode)
	if err != nil {
		return nil, err
	}

	tx, found, err := e.loadTransaction(ctx, req)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("transaction %s: %w", req.TransactionID, model.ErrNotFound)
	}

	g, gctx := errgroup.WithContext(ctx)
	var acceptance model.Acceptance
	g.Go(func() error {
		var err error
		acceptance, err = e.acceptances.Acceptance(gctx, tx.TransactionID)
		if err != nil {
			return fmt.Errorf("resolve acceptance: %w", err)
		}
		return nil
	})
	if req.IncludeInputs {
		g.Go(func() error {
			inputs, err := e.outpoints.Resolve(gctx, tx.Inputs, mode)
			if err != nil {
				return fmt.Errorf("resolve previous outpoints: %w", err)
			}
			tx.Inputs = inputs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fields := model.AllFields
	if !req.IncludeInputs {
		fields = fields.Without(model.FieldInputs)
		tx.Inputs = nil
	}
	if !req.IncludeOutputs {
		fields = fields.Without(model.FieldOutputs)
		tx.Outputs = nil
	}

	result = &model.TransactionResult{
		Transaction: model.NewTransactionView(tx, acceptance, fields, mode),
	}
	if ttl, ok := e.cache.TTL(acceptance.BlueScore, blockTimePtr(tx.BlockTime)); ok {
		result.CacheMaxAge = ttl
	}
	return result, nil
}

// loadTransaction tries the node with the hinted block, then the node with the first indexed
// containing block, then the index.
func (e *Explorer) loadTransaction(ctx context.Context, req model.GetTransactionRequest) (model.Transaction, bool, error) {
	if req.BlockHashHint != "" {
		if tx, ok := e.nodeTransaction(ctx, req.BlockHashHint, req.TransactionID); ok {
			tx.BlockHashes = []string{req.BlockHashHint}
			return tx, true, nil
		}
	}

	ids := []string{req.TransactionID}
	blockHashes, err := e.transactions.TransactionBlockHashes(ctx, e.cfg.Network, ids)
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("query transaction block hashes: %w", err)
	}
	hashes := blockHashes[req.TransactionID]
	if len(hashes) > 0 {
		if tx, ok := e.nodeTransaction(ctx, hashes[0], req.TransactionID); ok {
			tx.BlockHashes = hashes
			return tx, true, nil
		}
	}

	txs, err := e.transactions.Transactions(ctx, e.cfg.Network, ids)
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("query transaction: %w", err)
	}
	if len(txs) == 0 {
		return model.Transaction{}, false, nil
	}
	tx := txs[0]
	tx.BlockHashes = hashes

	g, gctx := errgroup.WithContext(ctx)
	if req.IncludeInputs {
		g.Go(func() error {
			inputs, err := e.transactions.TransactionInputs(gctx, e.cfg.Network, ids)
			if err != nil {
				return fmt.Errorf("query transaction inputs: %w", err)
			}
			tx.Inputs = inputs[tx.TransactionID]
			return nil
		})
	}
	if req.IncludeOutputs {
		g.Go(func() error {
			outputs, err := e.transactions.TransactionOutputs(gctx, e.cfg.Network, ids)
			if err != nil {
				return fmt.Errorf("query transaction outputs: %w", err)
			}
			tx.Outputs = outputs[tx.TransactionID]
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Transaction{}, false, err
	}
	return tx, true, nil
}

// nodeTransaction looks the transaction up in a block held by the node. Node failures fall back
// to the index.
func (e *Explorer) nodeTransaction(ctx context.Context, blockHash, id string) (model.Transaction, bool) {
	if e.node == nil {
		return model.Transaction{}, false
	}
	callCtx, cancel := context.WithTimeout(ctx, e.cfg.NodeTimeout)
	defer cancel()

	block, err := e.node.GetBlock(callCtx, blockHash, true)
	if err != nil {
		e.logger.Debug("node block lookup failed",
			zap.String("block_hash", blockHash),
			zap.String("transaction_id", id),
			zap.Error(err),
		)
		return model.Transaction{}, false
	}
	if block == nil {
		return model.Transaction{}, false
	}
	return block.Transaction(id)
}

func validateTransactionID(id string) error {
	if !transactionIDPattern.MatchString(id) {
		return fmt.Errorf("%w: malformed transaction id %q", model.ErrInvalidRequest, id)
	}
	return nil
}

func normalizeMode(mode model.ResolveMode) (model.ResolveMode, error) {
	if mode == "" {
		return model.ResolveNone, nil
	}
	if !mode.Valid() {
		return "", fmt.Errorf("%w: unknown resolve mode %q", model.ErrInvalidRequest, mode)
	}
	return mode, nil
}

func blockTimePtr(blockTime int64) *int64 {
	if blockTime <= 0 {
		return nil
	}
	return &blockTime
}
