package registry

import (
	"fmt"
	"strings"

	"github.com/ggonzalez94/synth-cli/internal/id"
)

// Canonical default EVM RPC endpoints by chain ID.
// These values are used whenever a command does not pass --rpc-url.
var defaultRPCByChainID = map[int64]string{
	id.ChainBSC:            "https://bsc-dataseed.binance.org",
	id.ChainBSCTestnet:     "https://data-seed-prebsc-1-s1.binance.org:8545",
	id.ChainArbitrum:       "https://arb1.arbitrum.io/rpc",
	id.ChainArbitrumGoerli: "https://goerli-rollup.arbitrum.io/rpc",
	id.ChainAvalanche:      "https://api.avax.network/ext/bc/C/rpc",
	id.ChainAvalancheFuji:  "https://api.avax-test.network/ext/bc/C/rpc",
}

func DefaultRPCURL(chainID int64) (string, bool) {
	value, ok := defaultRPCByChainID[chainID]
	return value, ok
}

func ResolveRPCURL(override string, chainID int64) (string, error) {
	if strings.TrimSpace(override) != "" {
		return strings.TrimSpace(override), nil
	}
	if value, ok := DefaultRPCURL(chainID); ok {
		return value, nil
	}
	return "", fmt.Errorf("no default rpc configured for chain id %d; provide --rpc-url", chainID)
}
