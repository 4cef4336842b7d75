package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

const addressesTransactionsTable = "explorer_addresses_transactions"

// ProbeCapabilities detects optional tables once at startup.
func (r *Repository) ProbeCapabilities(ctx context.Context, network model.Network) (caps model.Capabilities, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("probe_capabilities", network, err, start)
	}()

	const query = `
SELECT count()
FROM system.tables
WHERE database = currentDatabase() AND name = ?`

	rows, err := r.conn.Query(ctx, query, addressesTransactionsTable)
	if err != nil {
		return caps, fmt.Errorf("query system tables: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var count uint64
	if rows.Next() {
		if err = rows.Scan(&count); err != nil {
			return caps, fmt.Errorf("scan table count: %w", err)
		}
	}
	if err = rows.Err(); err != nil {
		return caps, fmt.Errorf("iterate system tables: %w", err)
	}

	caps.AddressIndex = count > 0
	return caps, nil
}
