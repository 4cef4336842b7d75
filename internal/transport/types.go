package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
)

type (
	// Explorer is the query engine served over REST.
	Explorer interface {
		GetTransaction(ctx context.Context, req model.GetTransactionRequest) (*model.TransactionResult, error)
		SearchTransactions(ctx context.Context, req model.SearchRequest) (*model.SearchResult, error)
		PageAddressTransactions(ctx context.Context, req model.AddressPageRequest) (*model.AddressPageResult, error)
		VirtualChainBlueScore() uint64
	}
	// Pinger checks that a backend is reachable.
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
