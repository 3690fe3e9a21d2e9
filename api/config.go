package api

import "time"

// network type constants
const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// node endpoints
const (
	MainnetNodeURL = "https://node.mainnet.alephium.org"
	TestnetNodeURL = "https://node.testnet.alephium.org"

	// price feed, no api key required
	DefaultPriceURL = "https://api.coingecko.com/api/v3"
)

// DefaultTimeout bounds a single request round trip.
const DefaultTimeout = 30 * time.Second

// NodeURLForNetwork returns the public node for a network name. Unknown
// names fall back to testnet.
func NodeURLForNetwork(network string) string {
	if network == NetworkMainnet {
		return MainnetNodeURL
	}
	return TestnetNodeURL
}
