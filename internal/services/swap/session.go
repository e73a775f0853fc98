package swap

import (
	"context"
	"regexp"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
	"github.com/vadiminshakov/tokenswap/internal/services/catalog"
	"github.com/vadiminshakov/tokenswap/internal/services/feed"
	"github.com/vadiminshakov/tokenswap/internal/services/rate"
	"github.com/vadiminshakov/tokenswap/internal/services/transfer"
	"github.com/vadiminshakov/tokenswap/internal/services/wallet"
	"go.uber.org/zap"
)

var (
	// ErrSubmitInFlight means a commit is already running; the second
	// request is rejected, not queued.
	ErrSubmitInFlight = errors.New("swap already submitting")
	// ErrNoCatalog means Submit was called before a catalog loaded.
	ErrNoCatalog = errors.New("catalog not loaded")
	// ErrSessionClosed means the session was torn down.
	ErrSessionClosed = errors.New("session closed")
)

// amountPattern is the only shape the amount field may hold: digits
// with at most one decimal point.
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// percent shortcut amounts carry two decimal places.
const percentPrecision = 2

// ValidAmountText reports whether text is acceptable amount input.
func ValidAmountText(text string) bool {
	return amountPattern.MatchString(text)
}

// Options configure session defaults.
type Options struct {
	// DefaultPair is preferred for the initial selection; each side is
	// used independently when present in the catalog.
	DefaultPair entity.Pair
	// PercentPresets are the allowed percentage shortcuts.
	PercentPresets []int
	// SuccessDisplay is how long the session shows StateSuccess before
	// reverting to StateReady.
	SuccessDisplay time.Duration
}

func (o *Options) withDefaults() {
	if o.DefaultPair.From == "" && o.DefaultPair.To == "" {
		o.DefaultPair = entity.Pair{From: "WBTC", To: "ETH"}
	}
	if len(o.PercentPresets) == 0 {
		o.PercentPresets = []int{15, 25, 50, 75, 100}
	}
	if o.SuccessDisplay <= 0 {
		o.SuccessDisplay = 3 * time.Second
	}
}

// Session owns one swap form: the catalog view, the intent being
// edited and the lifecycle state. All methods are safe for concurrent
// use, but the session models a single logical flow: one fetch or
// submit at a time, everything else synchronous.
type Session struct {
	mu       sync.Mutex
	feed     feed.Feed
	wallet   *wallet.Wallet
	executor transfer.Executor
	logger   *zap.Logger
	opts     Options

	state    entity.State
	catalog  entity.Catalog
	intent   entity.SwapIntent
	rate     decimal.Decimal
	toAmount string
	lastErr  error

	// generation invalidates in-flight fetches and submits on Close so
	// late completions cannot mutate discarded state.
	generation uint64
	closed     bool
}

// NewSession creates a session over the given collaborators.
func NewSession(f feed.Feed, w *wallet.Wallet, ex transfer.Executor, logger *zap.Logger, opts Options) (*Session, error) {
	if f == nil {
		return nil, errors.New("feed is required")
	}
	if w == nil {
		return nil, errors.New("wallet is required")
	}
	if ex == nil {
		return nil, errors.New("transfer executor is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.withDefaults()

	return &Session{
		feed:     f,
		wallet:   w,
		executor: ex,
		logger:   logger,
		opts:     opts,
		state:    entity.StateIdle,
	}, nil
}

// LoadCatalog fetches the feed and replaces the catalog wholesale.
// The first non-empty load moves Idle to Ready and selects default
// tokens; an empty catalog keeps the session Idle. Reloading keeps
// current selections when the new catalog still lists them and never
// touches wallet balances. A feed failure is returned as
// feed.ErrFeedUnavailable and leaves the session unchanged.
func (s *Session) LoadCatalog(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	gen := s.generation
	s.mu.Unlock()

	samples, err := s.feed.Samples(ctx)
	if err != nil {
		s.logger.Warn("catalog load failed", zap.Error(err))
		return err
	}
	cat := catalog.Normalize(samples)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.generation {
		return nil
	}

	s.catalog = cat
	if len(cat) == 0 {
		s.state = entity.StateIdle
		s.intent = entity.SwapIntent{}
		s.toAmount = ""
		s.rate = decimal.Zero
		s.logger.Info("catalog empty, staying idle")
		return nil
	}

	if s.state == entity.StateIdle {
		s.selectDefaults()
		s.state = entity.StateReady
	} else if s.catalog.Find(s.intent.FromCurrency) == nil || s.catalog.Find(s.intent.ToCurrency) == nil {
		// a refresh dropped a selected token, start selection over
		s.selectDefaults()
		s.state = entity.StateReady
	}
	s.recompute()

	s.logger.Info("catalog loaded",
		zap.Int("tokens", len(cat)),
		zap.String("from", s.intent.FromCurrency),
		zap.String("to", s.intent.ToCurrency))
	return nil
}

// selectDefaults picks the configured pair when the catalog lists
// both sides, else falls back to the first two entries by sort order.
// A single-token catalog selects the same token on both sides.
func (s *Session) selectDefaults() {
	from := s.opts.DefaultPair.From
	to := s.opts.DefaultPair.To
	if s.catalog.Find(from) == nil || s.catalog.Find(to) == nil {
		from = s.catalog[0].Currency
		if len(s.catalog) > 1 {
			to = s.catalog[1].Currency
		} else {
			to = from
		}
	}
	s.intent = entity.SwapIntent{FromCurrency: from, ToCurrency: to}
	s.toAmount = ""
}

// SetAmount applies one amount edit. Text that is not plain decimal
// input is dropped without error, mirroring keystroke filtering.
func (s *Session) SetAmount(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() || !amountPattern.MatchString(text) {
		return
	}
	s.intent.FromAmount = text
	s.enterEditing()
}

// SelectFrom changes the from token. Unknown currencies are ignored.
func (s *Session) SelectFrom(currency string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() || s.catalog.Find(currency) == nil {
		return
	}
	s.intent.FromCurrency = currency
	s.enterEditing()
}

// SelectTo changes the to token. Unknown currencies are ignored.
func (s *Session) SelectTo(currency string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() || s.catalog.Find(currency) == nil {
		return
	}
	s.intent.ToCurrency = currency
	s.enterEditing()
}

// Flip swaps the from and to sides and clears both amounts.
func (s *Session) Flip() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() {
		return
	}
	s.intent.FromCurrency, s.intent.ToCurrency = s.intent.ToCurrency, s.intent.FromCurrency
	s.intent.FromAmount = ""
	s.enterEditing()
}

// Percent sets the from-amount to the given preset share of the
// available from-side balance, formatted to two decimal places. It
// funnels through the same editing transition as typed input.
func (s *Session) Percent(pct int) {
	if !s.preset(pct) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editable() {
		return
	}
	bal := s.wallet.BalanceOf(s.intent.FromCurrency)
	amount := bal.Mul(decimal.NewFromInt(int64(pct))).Div(decimal.NewFromInt(100))
	s.intent.FromAmount = amount.StringFixed(percentPrecision)
	s.enterEditing()
}

func (s *Session) preset(pct int) bool {
	for _, p := range s.opts.PercentPresets {
		if p == pct {
			return true
		}
	}
	return false
}

// editable reports whether user input may be applied right now.
func (s *Session) editable() bool {
	if s.closed {
		return false
	}
	return s.state != entity.StateIdle && s.state != entity.StateSubmitting
}

func (s *Session) enterEditing() {
	s.state = entity.StateEditing
	s.lastErr = nil
	s.recompute()
}

// recompute refreshes the cached rate and the to-amount preview. It
// is called on every edit and has no other side effects.
func (s *Session) recompute() {
	s.rate = rate.Calculate(s.catalog.Find(s.intent.FromCurrency), s.catalog.Find(s.intent.ToCurrency))
	if s.intent.FromAmount == "" {
		s.toAmount = ""
		return
	}
	amount, err := decimal.NewFromString(s.intent.FromAmount)
	if err != nil {
		s.toAmount = ""
		return
	}
	to := amount.Mul(s.rate)
	if to.GreaterThan(decimal.Zero) {
		s.toAmount = to.StringFixed(resultPrecision)
	} else {
		s.toAmount = "0"
	}
}

// Submit validates the current intent and, when it passes, runs the
// transfer and commits the result to the wallet. Validation failure
// keeps the session in Editing with the typed reason; transfer
// failure moves it to Failed with the wallet untouched. A Submit
// while one is in flight is rejected with ErrSubmitInFlight.
func (s *Session) Submit(ctx context.Context) (entity.SwapResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return entity.SwapResult{}, ErrSessionClosed
	}
	switch s.state {
	case entity.StateSubmitting:
		s.mu.Unlock()
		return entity.SwapResult{}, ErrSubmitInFlight
	case entity.StateIdle:
		s.mu.Unlock()
		return entity.SwapResult{}, ErrNoCatalog
	}

	res, err := Validate(s.intent, s.catalog, s.wallet.BalanceOf)
	if err != nil {
		s.state = entity.StateEditing
		s.lastErr = err
		s.mu.Unlock()
		s.logger.Info("swap rejected", zap.Error(err))
		return entity.SwapResult{}, err
	}

	s.state = entity.StateSubmitting
	gen := s.generation
	s.mu.Unlock()

	s.logger.Info("submitting swap", zap.String("swap", res.String()))
	execErr := s.executor.Execute(ctx, res)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || gen != s.generation {
		// session ended while the transfer was in flight
		return entity.SwapResult{}, ErrSessionClosed
	}

	if execErr != nil {
		s.state = entity.StateFailed
		s.lastErr = errors.Wrap(execErr, "transfer failed")
		s.logger.Warn("transfer failed", zap.Error(execErr))
		return entity.SwapResult{}, s.lastErr
	}

	s.wallet.Commit(res)
	s.intent.FromAmount = ""
	s.toAmount = ""
	s.lastErr = nil
	s.state = entity.StateSuccess
	s.logger.Info("swap committed", zap.String("swap", res.String()))
	s.scheduleReadyRevert(gen)

	return res, nil
}

// scheduleReadyRevert moves Success back to Ready after the display
// window, unless the session moved on in the meantime.
func (s *Session) scheduleReadyRevert(gen uint64) {
	time.AfterFunc(s.opts.SuccessDisplay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || gen != s.generation || s.state != entity.StateSuccess {
			return
		}
		s.state = entity.StateReady
	})
}

// Close ends the session. Late fetch or submit completions become
// no-ops.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.generation++
}

// State returns the current lifecycle state.
func (s *Session) State() entity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Intent returns the intent as currently edited.
func (s *Session) Intent() entity.SwapIntent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intent
}

// Preview returns the computed to-amount text, empty when no amount
// is entered.
func (s *Session) Preview() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toAmount
}

// Rate returns the current from/to rate, zero when unavailable.
func (s *Session) Rate() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate
}

// Catalog returns a copy of the current catalog.
func (s *Session) Catalog() entity.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(entity.Catalog, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Err returns the last surfaced failure reason, nil after any edit.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// BalanceOf exposes the wallet balance for display.
func (s *Session) BalanceOf(currency string) decimal.Decimal {
	return s.wallet.BalanceOf(currency)
}

// Presets returns the configured percentage shortcuts.
func (s *Session) Presets() []int {
	out := make([]int, len(s.opts.PercentPresets))
	copy(out, s.opts.PercentPresets)
	return out
}
