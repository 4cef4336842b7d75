package clickhouse

import (
	"context"
	"fmt"
)

// Ping checks that ClickHouse is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}
