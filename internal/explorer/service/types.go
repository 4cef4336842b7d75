package service

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

type (
	// TransactionRepository reads stored transactions and their children.
	TransactionRepository interface {
		Transactions(ctx context.Context, network model.Network, ids []string) ([]model.Transaction, error)
		TransactionBlockHashes(ctx context.Context, network model.Network, ids []string) (map[string][]string, error)
		TransactionInputs(ctx context.Context, network model.Network, ids []string) (map[string][]model.TransactionInput, error)
		TransactionOutputs(ctx context.Context, network model.Network, ids []string) (map[string][]model.TransactionOutput, error)
		AcceptedTransactionIDs(ctx context.Context, network model.Network, gte, lt uint64) ([]string, error)
	}
	OutpointRepository interface {
		PreviousOutputs(ctx context.Context, network model.Network, outpoints []model.Outpoint) (map[model.Outpoint]model.TransactionOutput, error)
	}
	AcceptanceRepository interface {
		TransactionAcceptances(ctx context.Context, network model.Network, ids []string) (map[string]string, error)
		Blocks(ctx context.Context, network model.Network, hashes []string) (map[string]model.BlockHeader, error)
	}
	AddressRepository interface {
		AddressTransactions(ctx context.Context, network model.Network, q model.AddressTransactionsQuery) ([]model.AddressTransaction, error)
		AddressTransactionsAt(ctx context.Context, network model.Network, script string, blockTimes []int64) ([]model.AddressTransaction, error)
		HasAddressTransactionsBefore(ctx context.Context, network model.Network, script string, blockTime int64) (bool, error)
		HasAddressTransactionsAfter(ctx context.Context, network model.Network, script string, blockTime int64) (bool, error)
	}
	// NodeClient fetches blocks from a kaspad node.
	NodeClient interface {
		GetBlock(ctx context.Context, hash string, includeTransactions bool) (*model.NodeBlock, error)
	}
	TipProvider interface {
		BlueScore() uint64
	}
	ScriptDecoder interface {
		Script(address string) (string, error)
		Address(script string) (string, error)
		ScriptType(script string) string
	}
	ExplorerMetrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// OutpointResolver attaches previous-outpoint data to inputs.
	OutpointResolver interface {
		Resolve(ctx context.Context, inputs []model.TransactionInput, mode model.ResolveMode) ([]model.TransactionInput, error)
	}
	// AcceptanceResolver answers whether transactions were accepted and by which block.
	AcceptanceResolver interface {
		Acceptance(ctx context.Context, id string) (model.Acceptance, error)
		AcceptanceBatch(ctx context.Context, ids []string) (map[string]model.Acceptance, error)
	}
	// Paginator pages the transaction ids of an address by block time.
	Paginator interface {
		Page(ctx context.Context, script string, limit int, before, after int64) (model.AddressPage, error)
	}
	// CachePolicy derives a cache lifetime in seconds from the freshness of a record.
	CachePolicy interface {
		TTL(blueScore *uint64, timestampMs *int64) (int, bool)
	}
)
