package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// TransactionBlockHashes returns the hashes of the blocks containing each transaction.
func (r *Repository) TransactionBlockHashes(ctx context.Context, network model.Network, ids []string) (result map[string][]string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_block_hashes", network, err, start)
	}()

	result = make(map[string][]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const query = `
SELECT DISTINCT
	transaction_id,
	block_hash
FROM explorer_blocks_transactions
WHERE network = ? AND transaction_id IN ?
ORDER BY transaction_id, block_hash`

	rows, err := r.conn.Query(ctx, query, string(network), ids)
	if err != nil {
		return nil, fmt.Errorf("query transaction block hashes: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var id, hash string
		if err = rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("scan transaction block hash: %w", err)
		}
		result[id] = append(result[id], hash)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction block hashes: %w", err)
	}

	return result, nil
}
