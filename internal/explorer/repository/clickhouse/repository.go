// Package clickhouse reads the explorer tables maintained by the indexer.
package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

type (
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}
	// Conn is the part of a ClickHouse connection the repository reads through.
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Ping(ctx context.Context) error
		Close() error
	}
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: nativeConn{conn: conn}, metrics: metrics}, nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}

type nativeConn struct {
	conn clickhouse.Conn
}

func (c nativeConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	rows, err := c.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c nativeConn) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c nativeConn) Close() error {
	return c.conn.Close()
}
