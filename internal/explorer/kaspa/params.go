// Package kaspa adapts the kaspad RPC client and script encoding to the explorer model.
package kaspa

import (
	"fmt"

	"github.com/goodnatureofminers/kaspa-explorer-backend/internal/explorer/model"
	"github.com/kaspanet/kaspad/domain/dagconfig"
)

// MainnetGenesisTimestamp is the epoch millisecond timestamp of the first mainnet block.
const MainnetGenesisTimestamp int64 = 1636298787842

// ParamsForNetwork returns the consensus parameters of a network.
func ParamsForNetwork(network model.Network) (*dagconfig.Params, error) {
	switch network {
	case model.Mainnet:
		return &dagconfig.MainnetParams, nil
	case model.Testnet:
		return &dagconfig.TestnetParams, nil
	case model.Simnet:
		return &dagconfig.SimnetParams, nil
	case model.Devnet:
		return &dagconfig.DevnetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// GenesisTimestamp returns the earliest block time a network can have. Zero means unknown.
func GenesisTimestamp(network model.Network) int64 {
	if network == model.Mainnet {
		return MainnetGenesisTimestamp
	}
	return 0
}
