package clickhouse

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// PreviousOutputs returns the stored outputs referenced by the given outpoints in a single query.
// Outpoints whose output is not stored are absent from the result.
func (r *Repository) PreviousOutputs(ctx context.Context, network model.Network, outpoints []model.Outpoint) (result map[model.Outpoint]model.TransactionOutput, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("previous_outputs", network, err, start)
	}()

	result = make(map[model.Outpoint]model.TransactionOutput, len(outpoints))
	if len(outpoints) == 0 {
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
WHERE network = ? AND (transaction_id, index) IN (?)
GROUP BY
	transaction_id,
	index`

	rows, err := r.conn.Query(ctx, query, string(network), outpointTuples(outpoints))
	if err != nil {
		return nil, fmt.Errorf("query previous outputs: %w", err)
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
			return nil, fmt.Errorf("scan previous output: %w", err)
		}
		result[output.Outpoint()] = output
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate previous outputs: %w", err)
	}

	return result, nil
}

// outpointTuples binds distinct outpoints as (transaction_id, index) tuples in a stable order.
func outpointTuples(outpoints []model.Outpoint) []clickhouse.GroupSet {
	distinct := mapset.NewThreadUnsafeSetWithSize[model.Outpoint](len(outpoints))
	for _, outpoint := range outpoints {
		distinct.Add(outpoint)
	}
	sorted := distinct.ToSlice()
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TransactionID != sorted[j].TransactionID {
			return sorted[i].TransactionID < sorted[j].TransactionID
		}
		return sorted[i].Index < sorted[j].Index
	})

	tuples := make([]clickhouse.GroupSet, 0, len(sorted))
	for _, outpoint := range sorted {
		tuples = append(tuples, clickhouse.GroupSet{Value: []any{outpoint.TransactionID, outpoint.Index}})
	}
	return tuples
}
