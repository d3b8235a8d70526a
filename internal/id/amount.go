package id

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
)

// ParseBaseUnits parses a non-negative integer amount. Empty input is zero.
func ParseBaseUnits(raw string) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return new(big.Int), nil
	}
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, clierr.New(clierr.CodeUsage, fmt.Sprintf("invalid integer amount: %s", raw))
	}
	if n.Sign() < 0 {
		return nil, clierr.New(clierr.CodeUsage, fmt.Sprintf("amount must be non-negative: %s", raw))
	}
	return n, nil
}

// ToDecimal scales base units down by decimals. A nil amount is zero.
func ToDecimal(amount *big.Int, decimals int) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, int32(-decimals))
}

// FormatAmount renders base units as a decimal string with trailing zeros removed.
func FormatAmount(amount *big.Int, decimals int) string {
	return ToDecimal(amount, decimals).String()
}

// FormatAmountHuman renders a compact value such as 1.2M or 950.5k.
func FormatAmountHuman(amount *big.Int, decimals int, usd bool, places int32) string {
	value := ToDecimal(amount, decimals)
	suffix := ""
	thousand := decimal.NewFromInt(1_000)
	switch abs := value.Abs(); {
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000_000)):
		value = value.Div(decimal.NewFromInt(1_000_000_000))
		suffix = "b"
	case abs.GreaterThanOrEqual(decimal.NewFromInt(1_000_000)):
		value = value.Div(decimal.NewFromInt(1_000_000))
		suffix = "m"
	case abs.GreaterThanOrEqual(thousand):
		value = value.Div(thousand)
		suffix = "k"
	}
	out := value.StringFixed(places) + suffix
	if usd {
		return "$" + out
	}
	return out
}
