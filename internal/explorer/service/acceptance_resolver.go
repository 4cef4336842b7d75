package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/goodnatureofminers/kaspa-explorer-backend/pkg/workerpool"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// BlockAcceptanceResolver resolves acceptance from the index and asks the node for accepting
// blocks that are not indexed yet.
type BlockAcceptanceResolver struct {
	logger      *zap.Logger
	repo        AcceptanceRepository
	node        NodeClient
	network     model.Network
	limiter     ratelimit.Limiter
	workers     int
	nodeTimeout time.Duration
}

// AcceptanceResolverConfig bounds the node fallback.
type AcceptanceResolverConfig struct {
	// NodeRPS limits node fallback calls per second; zero disables the limit.
	NodeRPS     int
	NodeWorkers int
	NodeTimeout time.Duration
}

func NewBlockAcceptanceResolver(
	repo AcceptanceRepository,
	node NodeClient,
	network model.Network,
	cfg AcceptanceResolverConfig,
	logger *zap.Logger,
) *BlockAcceptanceResolver {
	limiter := ratelimit.NewUnlimited()
	if cfg.NodeRPS > 0 {
		limiter = ratelimit.New(cfg.NodeRPS)
	}
	workers := cfg.NodeWorkers
	if workers <= 0 {
		workers = 4
	}
	timeout := cfg.NodeTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &BlockAcceptanceResolver{
		logger:      logger.Named("acceptanceResolver"),
		repo:        repo,
		node:        node,
		network:     network,
		limiter:     limiter,
		workers:     workers,
		nodeTimeout: timeout,
	}
}

func (r *BlockAcceptanceResolver) Acceptance(ctx context.Context, id string) (model.Acceptance, error) {
	batch, err := r.AcceptanceBatch(ctx, []string{id})
	if err != nil {
		return model.Acceptance{}, err
	}
	return batch[id], nil
}

// AcceptanceBatch returns an entry for every requested id. It issues one acceptance query and one
// block query regardless of the number of ids.
func (r *BlockAcceptanceResolver) AcceptanceBatch(ctx context.Context, ids []string) (map[string]model.Acceptance, error) {
	distinct := mapset.NewThreadUnsafeSetWithSize[string](len(ids))
	for _, id := range ids {
		distinct.Add(id)
	}
	result := make(map[string]model.Acceptance, distinct.Cardinality())
	for id := range distinct.Iter() {
		result[id] = model.Acceptance{TransactionID: id}
	}
	if len(result) == 0 {
		return result, nil
	}

	accepting, err := r.repo.TransactionAcceptances(ctx, r.network, distinct.ToSlice())
	if err != nil {
		return nil, fmt.Errorf("query transaction acceptances: %w", err)
	}
	if len(accepting) == 0 {
		return result, nil
	}

	hashes := mapset.NewThreadUnsafeSetWithSize[string](len(accepting))
	for _, hash := range accepting {
		hashes.Add(hash)
	}
	headers, err := r.blockHeaders(ctx, hashes.ToSlice())
	if err != nil {
		return nil, err
	}

	for id, hash := range accepting {
		if !distinct.Contains(id) {
			continue
		}
		acceptance := model.Acceptance{TransactionID: id, Accepted: true, BlockHash: hash}
		if header, ok := headers[hash]; ok {
			blueScore := header.BlueScore
			timestamp := header.Timestamp
			acceptance.BlueScore = &blueScore
			acceptance.Timestamp = &timestamp
		}
		result[id] = acceptance
	}

	return result, nil
}

// blockHeaders loads indexed headers and fetches the rest from the node, once per hash.
// Headers the node cannot provide are left out.
func (r *BlockAcceptanceResolver) blockHeaders(ctx context.Context, hashes []string) (map[string]model.BlockHeader, error) {
	indexed, err := r.repo.Blocks(ctx, r.network, hashes)
	if err != nil {
		return nil, fmt.Errorf("query accepting blocks: %w", err)
	}

	headers := make(map[string]model.BlockHeader, len(hashes))
	missing := make([]string, 0)
	for _, hash := range hashes {
		if header, ok := indexed[hash]; ok {
			headers[hash] = header
			continue
		}
		missing = append(missing, hash)
	}
	if len(missing) == 0 || r.node == nil {
		return headers, nil
	}

	var mu sync.Mutex
	err = workerpool.Process(ctx, r.workers, missing, func(ctx context.Context, hash string) error {
		header, ok, err := r.nodeHeader(ctx, hash)
		if err != nil || !ok {
			return err
		}
		mu.Lock()
		headers[hash] = header
		mu.Unlock()
		return nil
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch accepting blocks from node: %w", err)
	}

	return headers, nil
}

// nodeHeader only fails when the request itself is canceled; node errors leave the header unknown.
func (r *BlockAcceptanceResolver) nodeHeader(ctx context.Context, hash string) (model.BlockHeader, bool, error) {
	r.limiter.Take()
	if err := ctx.Err(); err != nil {
		return model.BlockHeader{}, false, err
	}

	callCtx, cancel := context.WithTimeout(ctx, r.nodeTimeout)
	defer cancel()

	block, err := r.node.GetBlock(callCtx, hash, false)
	if err != nil {
		r.logger.Warn("accepting block unavailable from node",
			zap.String("block_hash", hash),
			zap.Error(err),
		)
		return model.BlockHeader{}, false, nil
	}
	if block == nil {
		return model.BlockHeader{}, false, nil
	}
	return block.Header, true, nil
}
