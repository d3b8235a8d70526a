package market

import (
	"math/big"
	"strings"

	"github.com/ggonzalez94/synth-cli/internal/id"
)

// USDDecimals is the fixed-point precision of every USD amount in a snapshot.
const USDDecimals = 30

type Token struct {
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
	Decimals int    `json:"decimals"`
}

// GlvMarket is one underlying GM market held by a GLV, with the GLV's
// position in it.
type GlvMarket struct {
	Address    string   `json:"address"`
	BalanceUSD *big.Int `json:"balance_usd"`
	MaxUSD     *big.Int `json:"max_usd"`
}

// Market describes a GM pool or a GLV vault. Address is the market (or GLV)
// token address and identifies it.
type Market struct {
	Address         string      `json:"address"`
	Name            string      `json:"name,omitempty"`
	Glv             bool        `json:"is_glv"`
	IndexToken      Token       `json:"index_token"`
	LongToken       Token       `json:"long_token"`
	ShortToken      Token       `json:"short_token"`
	LongPoolAmount  *big.Int    `json:"long_pool_amount,omitempty"`
	ShortPoolAmount *big.Int    `json:"short_pool_amount,omitempty"`
	LongPoolUSD     *big.Int    `json:"long_pool_usd,omitempty"`
	ShortPoolUSD    *big.Int    `json:"short_pool_usd,omitempty"`
	TotalSupply     *big.Int    `json:"total_supply,omitempty"`
	GlvMarkets      []GlvMarket `json:"glv_markets,omitempty"`
}

func (m Market) IsGlv() bool {
	return m.Glv
}

// IsSpotOnly reports a swap-only GM market, whose index token is the zero
// address.
func (m Market) IsSpotOnly() bool {
	return !m.Glv && (m.IndexToken.Address == "" || id.AddressEqual(m.IndexToken.Address, id.NativeTokenAddress))
}

// IndexName is "ETH/USD" style; empty for GLVs.
func (m Market) IndexName() string {
	if m.Glv {
		return ""
	}
	if m.IsSpotOnly() {
		return "SWAP-ONLY"
	}
	return m.IndexToken.Symbol + "/USD"
}

// PoolName joins the collateral symbols, collapsing single-token pools.
func (m Market) PoolName() string {
	long, short := m.LongToken.Symbol, m.ShortToken.Symbol
	if long == short {
		return long
	}
	return long + "-" + short
}

func (m Market) GlvDisplayName() string {
	if m.Name != "" {
		return "GLV: " + m.Name
	}
	return "GLV"
}

// DisplayName is the label used in listings, e.g. "GM: ETH/USD [WETH-USDC]".
func (m Market) DisplayName() string {
	if m.Glv {
		return m.GlvDisplayName() + " [" + m.PoolName() + "]"
	}
	return "GM: " + m.IndexName() + " [" + m.PoolName() + "]"
}

func supplyOf(m Market) *big.Int {
	if m.TotalSupply == nil {
		return new(big.Int)
	}
	return m.TotalSupply
}

// BestGlv returns the GLV with the strictly largest total supply. A missing
// supply counts as zero and the earliest GLV wins ties.
func BestGlv(markets []Market) (Market, bool) {
	var (
		best  Market
		found bool
	)
	for _, m := range markets {
		if !m.Glv {
			continue
		}
		if !found || supplyOf(m).Cmp(supplyOf(best)) > 0 {
			best = m
			found = true
		}
	}
	return best, found
}

// Find looks up a market by address ignoring case.
func Find(markets []Market, address string) (Market, bool) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Market{}, false
	}
	for _, m := range markets {
		if id.AddressEqual(m.Address, address) {
			return m, true
		}
	}
	return Market{}, false
}

// Contains reports whether address is one of markets, ignoring case.
func Contains(markets []Market, address string) bool {
	_, ok := Find(markets, address)
	return ok
}
