package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"

	"github.com/ggonzalez94/synth-cli/internal/deeplink"
	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/id"
	"github.com/ggonzalez94/synth-cli/internal/market"
)

// Amount is an integer in base units. Documents may carry it as a JSON/YAML
// number or as a string, since most values overflow float64.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	*a = Amount(data)
	return nil
}

func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*a = ""
		return nil
	}
	*a = Amount(node.Value)
	return nil
}

// bigInt parses a; an empty amount is nil (unknown).
func (a Amount) bigInt(field string) (*big.Int, error) {
	if strings.TrimSpace(string(a)) == "" {
		return nil, nil
	}
	v, err := id.ParseBaseUnits(string(a))
	if err != nil {
		return nil, clierr.Wrap(clierr.CodeUsage, "invalid snapshot field "+field, err)
	}
	return v, nil
}

type Token struct {
	Symbol   string `json:"symbol" yaml:"symbol"`
	Address  string `json:"address" yaml:"address"`
	Decimals int    `json:"decimals" yaml:"decimals"`
}

type GlvMarket struct {
	Address    string `json:"address" yaml:"address"`
	BalanceUSD Amount `json:"balance_usd" yaml:"balance_usd"`
	MaxUSD     Amount `json:"max_usd" yaml:"max_usd"`
}

type Market struct {
	Address         string      `json:"address" yaml:"address"`
	Name            string      `json:"name" yaml:"name"`
	IsGlv           bool        `json:"is_glv" yaml:"is_glv"`
	IndexToken      Token       `json:"index_token" yaml:"index_token"`
	LongToken       Token       `json:"long_token" yaml:"long_token"`
	ShortToken      Token       `json:"short_token" yaml:"short_token"`
	LongPoolAmount  Amount      `json:"long_pool_amount" yaml:"long_pool_amount"`
	ShortPoolAmount Amount      `json:"short_pool_amount" yaml:"short_pool_amount"`
	LongPoolUSD     Amount      `json:"long_pool_usd" yaml:"long_pool_usd"`
	ShortPoolUSD    Amount      `json:"short_pool_usd" yaml:"short_pool_usd"`
	TotalSupply     Amount      `json:"total_supply" yaml:"total_supply"`
	GlvMarkets      []GlvMarket `json:"glv_markets" yaml:"glv_markets"`
}

// Document is the wire form of a market snapshot, as served by a snapshot
// service or stored in a YAML/JSON file.
type Document struct {
	ChainID        int64    `json:"chain_id" yaml:"chain_id"`
	Markets        []Market `json:"markets" yaml:"markets"`
	ShiftAvailable []string `json:"shift_available" yaml:"shift_available"`
}

// Snapshot converts the document for chainID. A document that names a
// different chain is rejected; one that names none is accepted.
func (d Document) Snapshot(chainID int64) (deeplink.Snapshot, error) {
	if d.ChainID != 0 && chainID != 0 && d.ChainID != chainID {
		return deeplink.Snapshot{}, clierr.New(clierr.CodeUsage, fmt.Sprintf("snapshot is for chain id %d, not %d", d.ChainID, chainID))
	}
	if chainID == 0 {
		chainID = d.ChainID
	}
	snap := deeplink.Snapshot{ChainID: chainID, Markets: make([]market.Market, 0, len(d.Markets))}
	for i, raw := range d.Markets {
		m, err := raw.market()
		if err != nil {
			return deeplink.Snapshot{}, clierr.Wrap(clierr.CodeUsage, fmt.Sprintf("snapshot market %d", i), err)
		}
		snap.Markets = append(snap.Markets, m)
	}
	for _, address := range d.ShiftAvailable {
		if !common.IsHexAddress(address) {
			return deeplink.Snapshot{}, clierr.New(clierr.CodeUsage, fmt.Sprintf("invalid shift market address %q", address))
		}
		snap.ShiftAvailable = append(snap.ShiftAvailable, common.HexToAddress(address))
	}
	return snap, nil
}

func (m Market) market() (market.Market, error) {
	if !id.IsAddress(m.Address) {
		return market.Market{}, clierr.New(clierr.CodeUsage, fmt.Sprintf("invalid market address %q", m.Address))
	}
	out := market.Market{
		Address:    m.Address,
		Name:       m.Name,
		Glv:        m.IsGlv,
		IndexToken: market.Token(m.IndexToken),
		LongToken:  market.Token(m.LongToken),
		ShortToken: market.Token(m.ShortToken),
	}
	fields := []struct {
		name string
		raw  Amount
		dst  **big.Int
	}{
		{"long_pool_amount", m.LongPoolAmount, &out.LongPoolAmount},
		{"short_pool_amount", m.ShortPoolAmount, &out.ShortPoolAmount},
		{"long_pool_usd", m.LongPoolUSD, &out.LongPoolUSD},
		{"short_pool_usd", m.ShortPoolUSD, &out.ShortPoolUSD},
		{"total_supply", m.TotalSupply, &out.TotalSupply},
	}
	for _, f := range fields {
		v, err := f.raw.bigInt(f.name)
		if err != nil {
			return market.Market{}, err
		}
		*f.dst = v
	}
	for _, sub := range m.GlvMarkets {
		balance, err := sub.BalanceUSD.bigInt("balance_usd")
		if err != nil {
			return market.Market{}, err
		}
		maxUSD, err := sub.MaxUSD.bigInt("max_usd")
		if err != nil {
			return market.Market{}, err
		}
		out.GlvMarkets = append(out.GlvMarkets, market.GlvMarket{Address: sub.Address, BalanceUSD: balance, MaxUSD: maxUSD})
	}
	return out, nil
}
