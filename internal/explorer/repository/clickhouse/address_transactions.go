package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// AddressTransactions fetches one page of (transaction, block time) rows for a script.
// Rows are newest first unless After is set, in which case they are oldest first.
func (a *AddressIndex) AddressTransactions(ctx context.Context, network model.Network, q model.AddressTransactionsQuery) (result []model.AddressTransaction, err error) {
	start := time.Now()
	defer func() {
		a.repo.metrics.Observe("address_transactions", network, err, start)
	}()

	args := []any{string(network), q.Script}
	bound, order := "", "DESC"
	switch {
	case q.After > 0:
		bound, order = " AND block_time > ?", "ASC"
		args = append(args, q.After)
	case q.Before > 0:
		bound = " AND block_time < ?"
		args = append(args, q.Before)
	}
	args = append(args, q.Limit)

	query := fmt.Sprintf(`
SELECT DISTINCT
	transaction_id,
	block_time
FROM %s
WHERE network = ? AND script = ?%s
ORDER BY block_time %s, transaction_id %s
LIMIT ?`, a.source, bound, order, order)

	return a.scan(ctx, query, args...)
}

// AddressTransactionsAt returns every row of the script whose block time is one of blockTimes.
func (a *AddressIndex) AddressTransactionsAt(ctx context.Context, network model.Network, script string, blockTimes []int64) (result []model.AddressTransaction, err error) {
	start := time.Now()
	defer func() {
		a.repo.metrics.Observe("address_transactions_at", network, err, start)
	}()

	if len(blockTimes) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
SELECT DISTINCT
	transaction_id,
	block_time
FROM %s
WHERE network = ? AND script = ? AND block_time IN ?`, a.source)

	return a.scan(ctx, query, string(network), script, blockTimes)
}

func (a *AddressIndex) scan(ctx context.Context, query string, args ...any) (result []model.AddressTransaction, err error) {
	rows, err := a.repo.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query address transactions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var row model.AddressTransaction
		if err = rows.Scan(&row.TransactionID, &row.BlockTime); err != nil {
			return nil, fmt.Errorf("scan address transaction: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address transactions: %w", err)
	}

	return result, nil
}
