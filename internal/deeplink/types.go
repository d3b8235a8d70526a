package deeplink

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ggonzalez94/synth-cli/internal/id"
	"github.com/ggonzalez94/synth-cli/internal/market"
)

// Operation is the order-form action on a GM or GLV market.
type Operation string

const (
	OperationDeposit    Operation = "deposit"
	OperationWithdrawal Operation = "withdrawal"
	OperationShift      Operation = "shift"
)

// ParseOperation maps the link tokens buy, sell and shift, ignoring case.
func ParseOperation(token string) (Operation, bool) {
	switch strings.ToLower(token) {
	case "buy":
		return OperationDeposit, true
	case "sell":
		return OperationWithdrawal, true
	case "shift":
		return OperationShift, true
	default:
		return "", false
	}
}

// Mode is how many tokens the order form pays or receives.
type Mode string

const (
	ModeSingle Mode = "single"
	ModePair   Mode = "pair"
)

var modes = []Mode{ModeSingle, ModePair}

// ParseMode matches single or pair, ignoring case.
func ParseMode(value string) (Mode, bool) {
	for _, mode := range modes {
		if strings.EqualFold(string(mode), value) {
			return mode, true
		}
	}
	return "", false
}

// Params are the recognised deep-link query parameters. An empty value is
// treated the same as an absent one.
type Params struct {
	Market      string `json:"market,omitempty"`
	Operation   string `json:"operation,omitempty"`
	Mode        string `json:"mode,omitempty"`
	From        string `json:"from,omitempty"`
	Pool        string `json:"pool,omitempty"`
	Scroll      string `json:"scroll,omitempty"`
	PickBestGlv string `json:"pickBestGlv,omitempty"`
}

// IsEmpty reports whether the link carried no recognised parameter.
func (p Params) IsEmpty() bool {
	return p == Params{}
}

// State is the order-form state a pass reads and may update. HasFirstTokenSetter
// mirrors whether the host can accept a first-token update at all.
type State struct {
	Operation                    Operation `json:"operation"`
	Mode                         Mode      `json:"mode"`
	FirstTokenAddress            string    `json:"first_token_address,omitempty"`
	SelectedMarket               string    `json:"selected_market,omitempty"`
	SelectedMarketForGlv         string    `json:"selected_market_for_glv,omitempty"`
	MarketForGlvSelectedManually bool      `json:"market_for_glv_selected_manually"`
	HasFirstTokenSetter          bool      `json:"-"`
	QueryString                  string    `json:"query_string"`
}

// Snapshot is the market data a pass resolves against. Markets keep the
// provider's order, which decides best-GLV ties.
type Snapshot struct {
	ChainID        int64
	Markets        []market.Market
	ShiftAvailable []common.Address
}

// IsShiftAvailable reports whether address may be the source of a shift.
func (s Snapshot) IsShiftAvailable(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	target := common.HexToAddress(address)
	for _, candidate := range s.ShiftAvailable {
		if candidate == target {
			return true
		}
	}
	return false
}

// TokenResolver resolves from-token symbols for a chain.
type TokenResolver interface {
	TokenBySymbol(chainID int64, symbol string) (id.Token, bool)
	WrappedAddress(chainID int64, address string) string
}

// BootstrapTokens resolves against the built-in token list.
type BootstrapTokens struct{}

func (BootstrapTokens) TokenBySymbol(chainID int64, symbol string) (id.Token, bool) {
	return id.TokenBySymbol(chainID, symbol)
}

func (BootstrapTokens) WrappedAddress(chainID int64, address string) string {
	return id.ConvertToWrapped(chainID, address)
}

// Changes records which state dimensions a pass assigned.
type Changes struct {
	Operation    bool `json:"operation"`
	Mode         bool `json:"mode"`
	FirstToken   bool `json:"first_token"`
	Market       bool `json:"market"`
	MarketForGlv bool `json:"market_for_glv"`
	ManualFlag   bool `json:"manual_flag"`
}

// Any reports whether the pass assigned anything.
func (c Changes) Any() bool {
	return c != Changes{}
}

// Notification announces a market selected from a link.
type Notification struct {
	TitlePrefix string `json:"title_prefix"`
	IndexName   string `json:"index_name,omitempty"`
	PoolName    string `json:"pool_name"`
}

func (n Notification) Message() string {
	parts := []string{strings.TrimSpace(n.TitlePrefix)}
	if n.IndexName != "" {
		parts = append(parts, n.IndexName)
	}
	parts = append(parts, "["+n.PoolName+"]", "selected in order form")
	return strings.Join(parts, " ")
}

// Ignored is an input a pass could not use.
type Ignored struct {
	Param  string `json:"param"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// Effects are the side effects a pass asks the host to perform, plus the
// inputs it skipped.
type Effects struct {
	Changes      Changes       `json:"changes"`
	ScrollToTop  bool          `json:"scroll_to_top"`
	ClearQuery   bool          `json:"clear_query"`
	Notification *Notification `json:"notification,omitempty"`
	Ignored      []Ignored     `json:"ignored,omitempty"`
}

func (e *Effects) ignore(param, value, reason string) {
	e.Ignored = append(e.Ignored, Ignored{Param: param, Value: value, Reason: reason})
}
