package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// TransactionInputs returns the inputs of each transaction ordered by index.
func (r *Repository) TransactionInputs(ctx context.Context, network model.Network, ids []string) (result map[string][]model.TransactionInput, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transaction_inputs", network, err, start)
	}()

	result = make(map[string][]model.TransactionInput, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	const query = `
SELECT
	transaction_id,
	index,
	anyLast(previous_outpoint_hash) AS previous_outpoint_hash,
	anyLast(previous_outpoint_index) AS previous_outpoint_index,
	anyLast(signature_script) AS signature_script,
	anyLast(sig_op_count) AS sig_op_count
FROM explorer_transactions_inputs
WHERE network = ? AND transaction_id IN ?
GROUP BY
	transaction_id,
	index
ORDER BY transaction_id, index ASC`

	rows, err := r.conn.Query(ctx, query, string(network), ids)
	if err != nil {
		return nil, fmt.Errorf("query transaction inputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var input model.TransactionInput
		if err = rows.Scan(
			&input.TransactionID,
			&input.Index,
			&input.PreviousOutpoint.TransactionID,
			&input.PreviousOutpoint.Index,
			&input.SignatureScript,
			&input.SigOpCount,
		); err != nil {
			return nil, fmt.Errorf("scan transaction input: %w", err)
		}
		result[input.TransactionID] = append(result[input.TransactionID], input)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction inputs: %w", err)
	}

	return result, nil
}
