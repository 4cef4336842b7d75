package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

// Blocks returns the stored headers of the given blocks keyed by hash.
func (r *Repository) Blocks(ctx context.Context, network model.Network, hashes []string) (result map[string]model.BlockHeader, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("blocks", network, err, start)
	}()

	result = make(map[string]model.BlockHeader, len(hashes))
	if len(hashes) == 0 {
		return result, nil
	}

	const query = `
SELECT
	hash,
	anyLast(blue_score) AS blue_score,
	anyLast(daa_score) AS daa_score,
	anyLast(timestamp) AS timestamp
FROM explorer_blocks
WHERE network = ? AND hash IN ?
GROUP BY hash`

	rows, err := r.conn.Query(ctx, query, string(network), hashes)
	if err != nil {
		return nil, fmt.Errorf("query blocks: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var header model.BlockHeader
		if err = rows.Scan(
			&header.Hash,
			&header.BlueScore,
			&header.DAAScore,
			&header.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan block: %w", err)
		}
		result[header.Hash] = header
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blocks: %w", err)
	}

	return result, nil
}
