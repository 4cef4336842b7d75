// Package model contains the explorer domain entities and the request/response shapes
// shared by the repository, service and transport layers.
package model

import "fmt"

// Network identifies the Kaspa network an explorer instance serves.
type Network string

const (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Simnet  Network = "simnet"
	Devnet  Network = "devnet"
)

// ParseNetwork accepts both network names and their address prefixes.
func ParseNetwork(value string) (Network, error) {
	switch value {
	case "mainnet", "kaspa":
		return Mainnet, nil
	case "testnet", "kaspatest":
		return Testnet, nil
	case "simnet", "kaspasim":
		return Simnet, nil
	case "devnet", "kaspadev":
		return Devnet, nil
	default:
		return "", fmt.Errorf("unsupported network %q", value)
	}
}
