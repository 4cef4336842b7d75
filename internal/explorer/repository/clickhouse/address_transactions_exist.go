package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// HasAddressTransactionsBefore reports whether the script has a row strictly older than blockTime.
func (a *AddressIndex) HasAddressTransactionsBefore(ctx context.Context, network model.Network, script string, blockTime int64) (bool, error) {
	return a.exists(ctx, "has_address_transactions_before", "<", network, script, blockTime)
}

// HasAddressTransactionsAfter reports whether the script has a row strictly newer than blockTime.
func (a *AddressIndex) HasAddressTransactionsAfter(ctx context.Context, network model.Network, script string, blockTime int64) (bool, error) {
	return a.exists(ctx, "has_address_transactions_after", ">", network, script, blockTime)
}

func (a *AddressIndex) exists(ctx context.Context, operation, comparison string, network model.Network, script string, blockTime int64) (found bool, err error) {
	start := time.Now()
	defer func() {
		a.repo.metrics.Observe(operation, network, err, start)
	}()

	query := fmt.Sprintf(`
SELECT 1
FROM %s
WHERE network = ? AND script = ? AND block_time %s ?
LIMIT 1`, a.source, comparison)

	rows, err := a.repo.conn.Query(ctx, query, string(network), script, blockTime)
	if err != nil {
		return false, fmt.Errorf("query address transactions existence: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	found = rows.Next()
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("iterate address transactions existence: %w", err)
	}

	return found, nil
}
