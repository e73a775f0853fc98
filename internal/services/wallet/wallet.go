package wallet

import (
	"sync"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// Wallet is an in-memory balance ledger keyed by currency code. It is
// the sole owner of balances: nothing else mutates them, and a catalog
// refresh never touches them.
type Wallet struct {
	mu       sync.RWMutex
	balances map[string]decimal.Decimal
}

// New creates an empty wallet.
func New() *Wallet {
	return &Wallet{balances: make(map[string]decimal.Decimal)}
}

// Deposit adds funds to a currency. Used to seed a session.
func (w *Wallet) Deposit(currency string, amount decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[currency] = w.balances[currency].Add(amount)
}

// BalanceOf returns the available balance for a currency, zero for
// unknown currencies.
func (w *Wallet) BalanceOf(currency string) decimal.Decimal {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.balances[currency]
}

// Commit applies a validated swap: the from side is debited and the to
// side credited in one critical section, so no partial state is ever
// observable. Commit never fails; sufficiency must be checked before
// calling it.
func (w *Wallet) Commit(res entity.SwapResult) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balances[res.FromCurrency] = w.balances[res.FromCurrency].Sub(res.FromAmount)
	w.balances[res.ToCurrency] = w.balances[res.ToCurrency].Add(res.ToAmount)
}

// Balances returns a copy of all balances for display.
func (w *Wallet) Balances() map[string]decimal.Decimal {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make(map[string]decimal.Decimal, len(w.balances))
	for c, b := range w.balances {
		out[c] = b
	}
	return out
}
