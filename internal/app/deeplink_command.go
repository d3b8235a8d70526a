package app

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ggonzalez94/synth-cli/internal/deeplink"
	clierr "github.com/ggonzalez94/synth-cli/internal/errors"
	"github.com/ggonzalez94/synth-cli/internal/model"
)

func (s *runtimeState) newDeeplinkCommand() *cobra.Command {
	root := &cobra.Command{Use: "deeplink", Short: "Deep-link reconciliation"}

	var sf snapshotFlags
	var link string
	var query string
	var operationArg string
	var modeArg string
	var selectedMarket string
	var selectedGlvMarket string
	var firstToken string
	var noFirstTokenSetter bool
	resolveCmd := &cobra.Command{
		Use:     "resolve",
		Short:   "Resolve deep-link query parameters against a market snapshot",
		Example: "synth deeplink resolve --url 'https://app.example/#/pools?market=0x...&operation=buy' --snapshot-file markets.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (strings.TrimSpace(link) == "") == (strings.TrimSpace(query) == "") {
				return clierr.New(clierr.CodeUsage, "exactly one of --url or --query is required")
			}
			before, err := initialState(operationArg, modeArg)
			if err != nil {
				return err
			}
			before.SelectedMarket = strings.TrimSpace(selectedMarket)
			before.SelectedMarketForGlv = strings.TrimSpace(selectedGlvMarket)
			before.FirstTokenAddress = strings.TrimSpace(firstToken)

			var loc *linkLocation
			var params deeplink.Params
			if strings.TrimSpace(link) != "" {
				params, _, err = deeplink.ParseURL(link)
				if err != nil {
					return err
				}
				loc, err = newLinkLocation(link)
				if err != nil {
					return err
				}
			} else {
				params = deeplink.ParseQuery(query)
				loc = &linkLocation{u: &url.URL{RawQuery: strings.TrimPrefix(strings.TrimSpace(query), "?")}}
			}

			req := map[string]any{
				"params":     params,
				"query":      loc.Search(),
				"state":      before,
				"has_setter": !noFirstTokenSetter,
			}
			return s.runSnapshotCommand(cmd, sf, req, func(snap deeplink.Snapshot) (any, error) {
				// Each pass works on its own copy of the location.
				pass := loc.clone()
				host := deeplink.Host{Location: pass, Logger: s.logger}
				if !noFirstTokenSetter {
					host.SetFirstToken = func(string) {}
				}
				state := before
				state.HasFirstTokenSetter = host.HasFirstTokenSetter()
				state.QueryString = pass.Search()

				next, fx := deeplink.Reconcile(state, params, snap, deeplink.BootstrapTokens{})
				deeplink.Apply(next, fx, host)

				out := model.DeeplinkResolution{
					ChainID: snap.ChainID,
					Before:  state,
					State:   next,
					Effects: fx,
				}
				if fx.Notification != nil {
					out.Message = fx.Notification.Message()
				}
				if strings.TrimSpace(link) != "" {
					out.URLAfter = pass.String()
				}
				return out, nil
			})
		},
	}
	sf.bind(resolveCmd)
	resolveCmd.Flags().StringVar(&link, "url", "", "Full deep link")
	resolveCmd.Flags().StringVar(&query, "query", "", "Raw query string, e.g. '?market=0x...&mode=pair'")
	resolveCmd.Flags().StringVar(&operationArg, "operation", "", "Current operation (deposit, withdrawal, shift)")
	resolveCmd.Flags().StringVar(&modeArg, "mode", "", "Current mode (single, pair)")
	resolveCmd.Flags().StringVar(&selectedMarket, "selected-market", "", "Currently selected market address")
	resolveCmd.Flags().StringVar(&selectedGlvMarket, "selected-glv-market", "", "Currently selected GLV sub-market address")
	resolveCmd.Flags().StringVar(&firstToken, "first-token", "", "Currently selected first token address")
	resolveCmd.Flags().BoolVar(&noFirstTokenSetter, "no-first-token-setter", false, "Resolve as a form that cannot change its first token")
	root.AddCommand(resolveCmd)
	return root
}

// initialState builds the pre-link order form. Operations accept both state
// values (deposit) and link tokens (buy).
func initialState(operationArg, modeArg string) (deeplink.State, error) {
	state := deeplink.State{Operation: deeplink.OperationDeposit, Mode: deeplink.ModeSingle}
	if raw := strings.TrimSpace(operationArg); raw != "" {
		op, ok := parseStateOperation(raw)
		if !ok {
			return deeplink.State{}, clierr.New(clierr.CodeUsage, fmt.Sprintf("unknown operation %q", raw))
		}
		state.Operation = op
	}
	if raw := strings.TrimSpace(modeArg); raw != "" {
		mode, ok := deeplink.ParseMode(raw)
		if !ok {
			return deeplink.State{}, clierr.New(clierr.CodeUsage, fmt.Sprintf("unknown mode %q", raw))
		}
		state.Mode = mode
	}
	return state, nil
}

func parseStateOperation(raw string) (deeplink.Operation, bool) {
	for _, op := range []deeplink.Operation{deeplink.OperationDeposit, deeplink.OperationWithdrawal, deeplink.OperationShift} {
		if strings.EqualFold(raw, string(op)) {
			return op, true
		}
	}
	return deeplink.ParseOperation(raw)
}

// linkLocation is a deeplink.Location over a parsed link. Hash-routed links
// keep their query inside the fragment.
type linkLocation struct {
	u *url.URL
}

func newLinkLocation(link string) (*linkLocation, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return nil, clierr.Wrap(clierr.CodeUsage, "parse deep link", err)
	}
	return &linkLocation{u: u}, nil
}

func (l *linkLocation) clone() *linkLocation {
	u := *l.u
	return &linkLocation{u: &u}
}

func (l *linkLocation) inFragment() bool {
	return l.u.RawQuery == "" && strings.Contains(l.u.Fragment, "?")
}

func (l *linkLocation) Search() string {
	query := l.u.RawQuery
	if l.inFragment() {
		_, query, _ = strings.Cut(l.u.Fragment, "?")
	}
	if query == "" {
		return ""
	}
	return "?" + query
}

func (l *linkLocation) Replace(search string) {
	search = strings.TrimPrefix(search, "?")
	if !l.inFragment() {
		l.u.RawQuery = search
		return
	}
	route, _, _ := strings.Cut(l.u.Fragment, "?")
	if search != "" {
		route += "?" + search
	}
	l.u.Fragment = route
	l.u.RawFragment = ""
}

func (l *linkLocation) String() string {
	return l.u.String()
}
