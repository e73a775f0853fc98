package swap

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
	"github.com/vadiminshakov/tokenswap/internal/services/rate"
)

var (
	// ErrInvalidAmount means the from-amount is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance means the from-amount exceeds the
	// available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrSameTokenSwap means from and to are the same currency.
	ErrSameTokenSwap = errors.New("cannot swap the same token")
	// ErrRateUnavailable means no positive to-amount can be computed
	// for the selected pair.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// resultPrecision matches the form preview: to-amounts carry eight
// decimal places.
const resultPrecision = 8

// BalanceFunc reports the available balance for a currency.
type BalanceFunc func(currency string) decimal.Decimal

// Validate decides whether an intent may be committed. The checks run
// in a fixed order and the first failure wins: amount shape, balance,
// same-token, rate. Validate is a pure decision, it mutates nothing;
// on success the returned SwapResult carries the computed to-amount
// and the rate used.
func Validate(intent entity.SwapIntent, cat entity.Catalog, balanceOf BalanceFunc) (entity.SwapResult, error) {
	amount, err := decimal.NewFromString(intent.FromAmount)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return entity.SwapResult{}, ErrInvalidAmount
	}

	if amount.GreaterThan(balanceOf(intent.FromCurrency)) {
		return entity.SwapResult{}, ErrInsufficientBalance
	}

	if intent.FromCurrency == intent.ToCurrency {
		return entity.SwapResult{}, ErrSameTokenSwap
	}

	r := rate.Calculate(cat.Find(intent.FromCurrency), cat.Find(intent.ToCurrency))
	toAmount := amount.Mul(r).Round(resultPrecision)
	if toAmount.LessThanOrEqual(decimal.Zero) {
		return entity.SwapResult{}, ErrRateUnavailable
	}

	return entity.SwapResult{
		FromCurrency: intent.FromCurrency,
		ToCurrency:   intent.ToCurrency,
		FromAmount:   amount,
		ToAmount:     toAmount,
		Rate:         r,
	}, nil
}
