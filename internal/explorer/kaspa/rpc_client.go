package kaspa

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/kaspanet/kaspad/app/appmessage"
	"github.com/kaspanet/kaspad/infrastructure/network/rpcclient"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// RawClient is the part of the kaspad RPC client the explorer calls.
	RawClient interface {
		GetBlock(hash string, includeTransactions bool) (*appmessage.GetBlockResponseMessage, error)
		GetVirtualSelectedParentBlueScore() (*appmessage.GetVirtualSelectedParentBlueScoreResponseMessage, error)
		GetInfo() (*appmessage.GetInfoResponseMessage, error)
	}
)

// ErrNodeNotSynced is returned by Ping while the node is still syncing.
var ErrNodeNotSynced = errors.New("node is not synced")

// RPCClient is an instrumented pool of kaspad RPC connections.
// A kaspad connection routes responses by message type, so each connection serves one call at a time.
type RPCClient struct {
	clients    chan RawClient
	rpcMetrics RPCMetrics
}

// NewRPCClient constructs an instrumented client over already dialed connections.
func NewRPCClient(clients []RawClient, rpcMetrics RPCMetrics) *RPCClient {
	pool := make(chan RawClient, len(clients))
	for _, client := range clients {
		pool <- client
	}
	return &RPCClient{clients: pool, rpcMetrics: rpcMetrics}
}

// Dial opens connections to the kaspad RPC server at address. The returned function closes them.
func Dial(address string, connections int, timeout time.Duration) ([]RawClient, func(), error) {
	if connections < 1 {
		connections = 1
	}

	opened := make([]*rpcclient.RPCClient, 0, connections)
	closeAll := func() {
		for _, client := range opened {
			_ = client.Close()
		}
	}

	clients := make([]RawClient, 0, connections)
	for i := 0; i < connections; i++ {
		client, err := rpcclient.NewRPCClient(address)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connect to kaspad at %s: %w", address, err)
		}
		client.SetTimeout(timeout)
		opened = append(opened, client)
		clients = append(clients, client)
	}
	return clients, closeAll, nil
}

// GetBlock fetches a block by hash, optionally with its transactions.
func (r *RPCClient) GetBlock(ctx context.Context, hash string, includeTransactions bool) (block *model.NodeBlock, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block", err, started)
	}()

	var response *appmessage.GetBlockResponseMessage
	if err = r.do(ctx, func(client RawClient) (callErr error) {
		response, callErr = client.GetBlock(hash, includeTransactions)
		return callErr
	}); err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return convertBlock(hash, response.Block)
}

// GetSinkBlueScore returns the blue score of the virtual selected parent.
func (r *RPCClient) GetSinkBlueScore(ctx context.Context) (blueScore uint64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_virtual_selected_parent_blue_score", err, started)
	}()

	var response *appmessage.GetVirtualSelectedParentBlueScoreResponseMessage
	if err = r.do(ctx, func(client RawClient) (callErr error) {
		response, callErr = client.GetVirtualSelectedParentBlueScore()
		return callErr
	}); err != nil {
		return 0, fmt.Errorf("get virtual selected parent blue score: %w", err)
	}
	return response.BlueScore, nil
}

// GetInfo reports the node state.
func (r *RPCClient) GetInfo(ctx context.Context) (info model.NodeInfo, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_info", err, started)
	}()

	var response *appmessage.GetInfoResponseMessage
	if err = r.do(ctx, func(client RawClient) (callErr error) {
		response, callErr = client.GetInfo()
		return callErr
	}); err != nil {
		return info, fmt.Errorf("get info: %w", err)
	}
	return model.NodeInfo{
		P2PID:         response.P2PID,
		ServerVersion: response.ServerVersion,
		IsSynced:      response.IsSynced,
		IsUtxoIndexed: response.IsUtxoIndexed,
	}, nil
}

// Ping fails when the node is unreachable or not synced.
func (r *RPCClient) Ping(ctx context.Context) error {
	info, err := r.GetInfo(ctx)
	if err != nil {
		return err
	}
	if !info.IsSynced {
		return ErrNodeNotSynced
	}
	return nil
}

// do runs call on a free connection. A call abandoned by ctx keeps its connection until kaspad
// answers or the connection timeout fires.
func (r *RPCClient) do(ctx context.Context, call func(RawClient) error) error {
	var client RawClient
	select {
	case client = <-r.clients:
	case <-ctx.Done():
		return ctx.Err()
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			r.clients <- client
		}()
		done <- call(client)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
