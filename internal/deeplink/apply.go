package deeplink

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ggonzalez94/synth-cli/internal/logging"
)

// Location is the current page address. Replace swaps the query string of the
// current history entry without adding a new one.
type Location interface {
	Search() string
	Replace(search string)
}

type Notifier interface {
	Success(Notification)
}

type Viewport interface {
	ScrollTo(top, left int)
}

// Host owns the order-form state. Nil setters and sinks are skipped.
type Host struct {
	SetOperation                    func(Operation)
	SetMode                         func(Mode)
	SetFirstToken                   func(address string)
	SelectMarket                    func(address string)
	SelectMarketForGlv              func(address string)
	SetMarketForGlvSelectedManually func(bool)

	Location Location
	Notifier Notifier
	Viewport Viewport
	Logger   *zap.Logger
}

// HasFirstTokenSetter is the value to seed State.HasFirstTokenSetter with.
func (h Host) HasFirstTokenSetter() bool {
	return h.SetFirstToken != nil
}

// Apply pushes the result of Reconcile to host. Each setter is called at most
// once, with the final value of a dimension the pass assigned.
func Apply(next State, fx Effects, host Host) {
	logger := logging.OrNop(host.Logger)
	for _, ignored := range fx.Ignored {
		logger.Debug("deeplink input ignored",
			zap.String("param", ignored.Param),
			zap.String("value", ignored.Value),
			zap.String("reason", ignored.Reason),
		)
	}

	changes := fx.Changes
	if changes.Operation && host.SetOperation != nil {
		host.SetOperation(next.Operation)
	}
	if changes.Mode && host.SetMode != nil {
		host.SetMode(next.Mode)
	}
	if changes.FirstToken && host.SetFirstToken != nil {
		host.SetFirstToken(next.FirstTokenAddress)
	}
	if changes.Market && host.SelectMarket != nil {
		host.SelectMarket(next.SelectedMarket)
	}
	if changes.ManualFlag && host.SetMarketForGlvSelectedManually != nil {
		host.SetMarketForGlvSelectedManually(next.MarketForGlvSelectedManually)
	}
	if changes.MarketForGlv && host.SelectMarketForGlv != nil {
		host.SelectMarketForGlv(next.SelectedMarketForGlv)
	}

	if fx.Notification != nil && host.Notifier != nil {
		host.Notifier.Success(*fx.Notification)
	}
	if fx.ScrollToTop && host.Viewport != nil {
		host.Viewport.ScrollTo(0, 0)
	}
	if fx.ClearQuery && host.Location != nil && host.Location.Search() != "" {
		host.Location.Replace("")
	}
}

// Reconciler runs Reconcile and Apply for a host whenever the inputs of a pass
// differ from the previous one. Passes are serialized.
type Reconciler struct {
	mu      sync.Mutex
	host    Host
	tokens  TokenResolver
	state   State
	lastKey string
	ran     bool
}

func NewReconciler(initial State, host Host, tokens TokenResolver) *Reconciler {
	if tokens == nil {
		tokens = BootstrapTokens{}
	}
	initial.HasFirstTokenSetter = host.HasFirstTokenSetter()
	return &Reconciler{host: host, tokens: tokens, state: initial}
}

// Update runs a pass if params, snap, the current operation or the location's
// query changed since the last pass. It reports whether a pass ran.
func (r *Reconciler) Update(params Params, snap Snapshot) (State, Effects, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.host.Location != nil {
		r.state.QueryString = r.host.Location.Search()
	}
	key := dependencyKey(r.state, params, snap)
	if r.ran && key == r.lastKey {
		return r.state, Effects{}, false
	}

	next, fx := Reconcile(r.state, params, snap, r.tokens)
	Apply(next, fx, r.host)
	r.state = next
	r.lastKey = dependencyKey(next, params, snap)
	r.ran = true
	return next, fx, true
}

// Observe records a state change made by the host outside a pass, such as a
// manual operation switch.
func (r *Reconciler) Observe(update func(*State)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	update(&r.state)
}

func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func dependencyKey(state State, params Params, snap Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%s|%s|%d|%+v|", state.Operation, state.SelectedMarketForGlv, state.QueryString, snap.ChainID, params)
	for _, m := range snap.Markets {
		fmt.Fprintf(&b, "%s:%v:%s;", strings.ToLower(m.Address), m.Glv, m.TotalSupply)
	}
	b.WriteString("|")
	for _, addr := range snap.ShiftAvailable {
		b.WriteString(addr.Hex())
		b.WriteString(";")
	}
	return b.String()
}
