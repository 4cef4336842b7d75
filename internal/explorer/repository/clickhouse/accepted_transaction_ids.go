package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// AcceptedTransactionIDs returns the ids of transactions accepted by blocks whose blue score is in [gte, lt).
func (r *Repository) AcceptedTransactionIDs(ctx context.Context, network model.Network, gte, lt uint64) (result []string, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("accepted_transaction_ids", network, err, start)
	}()

	if lt <= gte {
		return nil, nil
	}

	const query = `
SELECT DISTINCT a.transaction_id
FROM explorer_transactions_acceptances AS a
INNER JOIN explorer_blocks AS b ON b.network = a.network AND b.hash = a.block_hash
WHERE a.network = ? AND b.blue_score >= ? AND b.blue_score < ?`

	rows, err := r.conn.Query(ctx, query, string(network), gte, lt)
	if err != nil {
		return nil, fmt.Errorf("query accepted transaction ids: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan accepted transaction id: %w", err)
		}
		result = append(result, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accepted transaction ids: %w", err)
	}

	return result, nil
}
