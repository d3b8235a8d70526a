package deeplink

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ggonzalez94/synth-cli/internal/market"
)

// Reconcile folds one set of link parameters into state. It never fails:
// anything it cannot resolve is recorded in Effects.Ignored and skipped. The
// returned state has QueryString emptied when the pass consumed the link.
func Reconcile(state State, params Params, snap Snapshot, tokens TokenResolver) (State, Effects) {
	next := state
	var fx Effects

	setOperation := func(op Operation) {
		next.Operation = op
		fx.Changes.Operation = true
	}

	candidate := strings.ToLower(strings.TrimSpace(params.Market))

	if params.Operation != "" {
		if op, ok := ParseOperation(params.Operation); ok {
			setOperation(op)
		} else {
			fx.ignore("operation", params.Operation, "unknown operation")
		}
	}

	if params.PickBestGlv != "" {
		setOperation(OperationDeposit)
		if best, ok := market.BestGlv(snap.Markets); ok {
			candidate = strings.ToLower(best.Address)
		} else {
			fx.ignore("pickBestGlv", params.PickBestGlv, "no glv markets in snapshot")
		}
	}

	if params.Mode != "" {
		if mode, ok := ParseMode(params.Mode); ok {
			next.Mode = mode
			fx.Changes.Mode = true
		} else {
			fx.ignore("mode", params.Mode, "unknown mode")
		}
	}

	if params.From != "" {
		switch {
		case !state.HasFirstTokenSetter:
			fx.ignore("from", params.From, "first token is not settable")
		case tokens == nil:
			fx.ignore("from", params.From, "no token resolver")
		default:
			if token, ok := tokens.TokenBySymbol(snap.ChainID, params.From); ok {
				next.FirstTokenAddress = tokens.WrappedAddress(snap.ChainID, token.Address)
				fx.Changes.FirstToken = true
			} else {
				fx.ignore("from", params.From, "unknown token symbol")
			}
		}
	}

	if params.Scroll == "1" {
		fx.ScrollToTop = true
	}

	if (candidate != "" || params.Pool != "") && len(snap.Markets) > 0 {
		if candidate != "" && common.IsHexAddress(candidate) {
			if selected, ok := market.Find(snap.Markets, candidate); ok {
				selectMarket(&next, &fx, state, params, snap, selected)
			} else {
				fx.ignore("market", candidate, "market not in snapshot")
			}
		} else if candidate != "" {
			fx.ignore("market", candidate, "invalid address")
		}
		if state.QueryString != "" {
			fx.ClearQuery = true
		}
	}

	if candidate == "" && params.Pool == "" && params.PickBestGlv == "" && state.QueryString != "" {
		fx.ClearQuery = true
	}

	if fx.ClearQuery {
		next.QueryString = ""
	}
	return next, fx
}

func selectMarket(next *State, fx *Effects, prev State, params Params, snap Snapshot, selected market.Market) {
	next.SelectedMarket = selected.Address
	next.MarketForGlvSelectedManually = false
	fx.Changes.Market = true
	fx.Changes.ManualFlag = true

	isGlv := selected.IsGlv()
	notification := &Notification{TitlePrefix: "GM: ", PoolName: selected.PoolName()}
	if isGlv {
		notification.TitlePrefix = selected.GlvDisplayName()
	} else {
		notification.IndexName = selected.IndexName()
	}
	fx.Notification = notification

	// Eligibility is judged against the operation the form held before the link.
	if prev.Operation == OperationShift && !snap.IsShiftAvailable(selected.Address) {
		next.Operation = OperationDeposit
		fx.Changes.Operation = true
	}

	if isGlv && params.Pool != "" && prev.HasFirstTokenSetter {
		next.FirstTokenAddress = params.Pool
		next.SelectedMarketForGlv = params.Pool
		fx.Changes.FirstToken = true
		fx.Changes.MarketForGlv = true
	}

	if isGlv && params.Pool == "" && prev.SelectedMarketForGlv != "" {
		next.SelectedMarketForGlv = ""
		fx.Changes.MarketForGlv = true
	}
}
