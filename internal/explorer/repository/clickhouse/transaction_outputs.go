package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// TransactionOutputs returns the outputs of each transaction ordered by index.
func (r *Repository) TransactionOutputs(ctx context.Context, network model.Network, ids []string) (result map[string][]model.TransactionOutput, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_outputs", network, err, start)
	}()

	result = make(map[string][]model.TransactionOutput, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	transaction_id,
	index,
	anyLast(amount) AS amount,
	anyLast(script_public_key) AS script_public_key,
	anyLast(script_public_key_address) AS script_public_key_address
FROM explorer_transactions_outputs
WHERE network = ? AND transaction_id IN ?
GROUP BY
	transaction_id,
	index
ORDER BY transaction_id, index ASC`

	rows, err := r.conn.Query(ctx, query, string(network), ids)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var output model.TransactionOutput
		if err = rows.Scan(
			&output.TransactionID,
			&output.Index,
			&output.Amount,
			&output.ScriptPublicKey,
			&output.ScriptPublicKeyAddress,
		); err != nil {
			return nil, fmt.Errorf("scan transaction output: %w", err)
		}
		result[output.TransactionID] = append(result[output.TransactionID], output)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	return result, nil
}
