package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// TransactionAcceptances maps each accepted transaction to its accepting block hash.
// Transactions without an acceptance record are absent.
func (r *Repository) TransactionAcceptances(ctx context.Context, network model.Network, ids []string) (result map[string]string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_acceptances", network, err, start)
	}()

	result = make(map[string]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	transaction_id,
	anyLast(block_hash) AS block_hash
FROM explorer_transactions_acceptances
WHERE network = ? AND transaction_id IN ?
GROUP BY transaction_id`

	rows, err := r.conn.Query(ctx, query, string(network), ids)
	if err != nil {
		return nil, fmt.Errorf("query transaction acceptances: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var id, hash string
		if err = rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("scan transaction acceptance: %w", err)
		}
		result[id] = hash
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction acceptances: %w", err)
	}

	return result, nil
}
