package service

import (
	"context"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/clock"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"golang.org/x/sync/errgroup"
)

const (
	MinPageLimit = 1
	MaxPageLimit = 500

	// maxClockSkew bounds how far in the future an after cursor may point.
	maxClockSkew = time.Hour
)

// AddressPaginator pages address transactions by block time. Rows sharing the block time of
// either end of a full page are always returned together, so following the cursors never skips
// or repeats a transaction.
type AddressPaginator struct {
	repo    AddressRepository
	network model.Network
	genesis int64
	clock   clock.Clock
}

func NewAddressPaginator(repo AddressRepository, network model.Network, genesisTimestamp int64, c clock.Clock) *AddressPaginator {
	return &AddressPaginator{
		repo:    repo,
		network: network,
		genesis: genesisTimestamp,
		clock:   c,
	}
}

// ValidatePage checks the arguments of Page without touching storage.
func ValidatePage(limit int, before, after int64) error {
	if before != 0 && after != 0 {
		return fmt.Errorf("%w: only one of before and after may be set", model.ErrInvalidRequest)
	}
	if before < 0 || after < 0 {
		return fmt.Errorf("%w: cursors must be positive", model.ErrInvalidRequest)
	}
	if limit < MinPageLimit || limit > MaxPageLimit {
		return fmt.Errorf("%w: limit must be between %d and %d", model.ErrInvalidRequest, MinPageLimit, MaxPageLimit)
	}
	return nil
}

// Page returns the transaction ids of one page. before and after are epoch milliseconds; zero
// means unset. With neither set the newest page is returned.
func (p *AddressPaginator) Page(ctx context.Context, script string, limit int, before, after int64) (model.AddressPage, error) {
	if err := ValidatePage(limit, before, after); err != nil {
		return model.AddressPage{}, err
	}
	if before != 0 && before <= p.genesis {
		return model.AddressPage{}, nil
	}
	if after != 0 && after > p.clock.Now().Add(maxClockSkew).UnixMilli() {
		return model.AddressPage{}, nil
	}

	rows, err := p.repo.AddressTransactions(ctx, p.network, model.AddressTransactionsQuery{
		Script: script,
		Before: before,
		After:  after,
		Limit:  limit,
	})
	if err != nil {
		return model.AddressPage{}, fmt.Errorf("query address transactions: %w", err)
	}
	if len(rows) == 0 {
		return model.AddressPage{}, nil
	}

	newest, oldest := rows[0].BlockTime, rows[0].BlockTime
	for _, row := range rows[1:] {
		newest = max(newest, row.BlockTime)
		oldest = min(oldest, row.BlockTime)
	}

	seen := mapset.NewThreadUnsafeSetWithSize[string](len(rows))
	ids := make([]string, 0, len(rows))
	appendRows := func(rows []model.AddressTransaction) {
		for _, row := range rows {
			if seen.Add(row.TransactionID) {
				ids = append(ids, row.TransactionID)
			}
		}
	}
	appendRows(rows)

	if len(rows) == limit {
		blockTimes := []int64{newest}
		if oldest != newest {
			blockTimes = append(blockTimes, oldest)
		}
		siblings, err := p.repo.AddressTransactionsAt(ctx, p.network, script, blockTimes)
		if err != nil {
			return model.AddressPage{}, fmt.Errorf("query address transactions at page bounds: %w", err)
		}
		appendRows(siblings)
	}

	page := model.AddressPage{
		TransactionIDs: ids,
		Newest:         newest,
		Oldest:         oldest,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exists, err := p.repo.HasAddressTransactionsAfter(gctx, p.network, script, newest)
		if err != nil {
			return fmt.Errorf("probe newer address transactions: %w", err)
		}
		page.HasNewer = exists
		return nil
	})
	g.Go(func() error {
		exists, err := p.repo.HasAddressTransactionsBefore(gctx, p.network, script, oldest)
		if err != nil {
			return fmt.Errorf("probe older address transactions: %w", err)
		}
		page.HasOlder = exists
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.AddressPage{}, err
	}

	return page, nil
}
