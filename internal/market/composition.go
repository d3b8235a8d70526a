package market

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/ggonzalez94/synth-cli/internal/id"
)

const (
	CompositionGM  = "gm"
	CompositionGLV = "glv"
)

var hundred = decimal.NewFromInt(100)

// CompositionRow is one line of a pool breakdown. GM rows carry Amount, GLV
// rows carry the TVL pair.
type CompositionRow struct {
	Label        string          `json:"label"`
	Symbol       string          `json:"symbol"`
	Market       string          `json:"market,omitempty"`
	Amount       string          `json:"amount,omitempty"`
	TVLUsed      string          `json:"tvl_used,omitempty"`
	TVLAvailable string          `json:"tvl_available,omitempty"`
	Percent      decimal.Decimal `json:"composition_pct"`
}

type Composition struct {
	Market string           `json:"market"`
	Kind   string           `json:"kind"`
	Rows   []CompositionRow `json:"rows"`
}

// CompositionOf breaks m down by collateral (GM) or by underlying market
// (GLV). all resolves GLV sub-market addresses; unknown ones are skipped.
func CompositionOf(m Market, all []Market) Composition {
	if m.Glv {
		return Composition{Market: m.Address, Kind: CompositionGLV, Rows: glvRows(m, all)}
	}
	return Composition{Market: m.Address, Kind: CompositionGM, Rows: gmRows(m)}
}

func gmRows(m Market) []CompositionRow {
	long := id.ToDecimal(m.LongPoolUSD, USDDecimals)
	short := id.ToDecimal(m.ShortPoolUSD, USDDecimals)
	sum := long.Add(short)
	return []CompositionRow{
		{
			Label:   "Long: " + m.LongToken.Symbol,
			Symbol:  m.LongToken.Symbol,
			Amount:  id.FormatAmountHuman(orZero(m.LongPoolAmount), m.LongToken.Decimals, false, 3),
			Percent: share(long, sum),
		},
		{
			Label:   "Short: " + m.ShortToken.Symbol,
			Symbol:  m.ShortToken.Symbol,
			Amount:  id.FormatAmountHuman(orZero(m.ShortPoolAmount), m.ShortToken.Decimals, false, 3),
			Percent: share(short, sum),
		},
	}
}

func glvRows(glv Market, all []Market) []CompositionRow {
	total := decimal.Zero
	for _, sub := range glv.GlvMarkets {
		total = total.Add(id.ToDecimal(sub.BalanceUSD, USDDecimals))
	}
	rows := make([]CompositionRow, 0, len(glv.GlvMarkets))
	for _, sub := range glv.GlvMarkets {
		underlying, ok := Find(all, sub.Address)
		if !ok || underlying.Glv {
			continue
		}
		rows = append(rows, CompositionRow{
			Label:        underlying.IndexName(),
			Symbol:       underlying.IndexToken.Symbol,
			Market:       underlying.Address,
			TVLUsed:      id.FormatAmountHuman(orZero(sub.BalanceUSD), USDDecimals, true, 1),
			TVLAvailable: id.FormatAmountHuman(orZero(sub.MaxUSD), USDDecimals, true, 1),
			Percent:      share(id.ToDecimal(sub.BalanceUSD, USDDecimals), total),
		})
	}
	return rows
}

// share is part as a percentage of sum, rounded to two places; zero when sum
// is not positive.
func share(part, sum decimal.Decimal) decimal.Decimal {
	if !sum.IsPositive() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(sum).Round(2)
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
