package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// Transactions returns the stored transactions for the given ids, newest first.
// Unknown ids are skipped.
func (r *Repository) Transactions(ctx context.Context, network model.Network, ids []string) (result []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions", network, err, start)
	}()

	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
SELECT
	transaction_id,
	anyLast(subnetwork_id) AS subnetwork_id,
	anyLast(hash) AS hash,
	anyLast(mass) AS mass,
	anyLast(payload) AS payload,
	anyLast(block_time) AS block_time
FROM explorer_transactions
WHERE network = ? AND transaction_id IN ?
GROUP BY transaction_id
ORDER BY block_time DESC, transaction_id ASC`

	rows, err := r.conn.Query(ctx, query, string(network), ids)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	result = make([]model.Transaction, 0, len(ids))
	for rows.Next() {
		var tx model.Transaction
		if err = rows.Scan(
			&tx.TransactionID,
			&tx.SubnetworkID,
			&tx.Hash,
			&tx.Mass,
			&tx.Payload,
			&tx.BlockTime,
		); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		result = append(result, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return result, nil
}
