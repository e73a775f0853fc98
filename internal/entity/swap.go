package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SwapIntent is the in-progress swap request exactly as the user
// entered it. FromAmount stays raw text until validation parses it.
type SwapIntent struct {
	FromCurrency string
	ToCurrency   string
	FromAmount   string
}

// SwapResult is a validated swap ready to be committed to the wallet.
// Rate is the from/to price ratio the to-amount was computed with.
type SwapResult struct {
	FromCurrency string
	ToCurrency   string
	FromAmount   decimal.Decimal
	ToAmount     decimal.Decimal
	Rate         decimal.Decimal
}

func (r *SwapResult) String() string {
	return fmt.Sprintf("%s %s -> %s %s (rate %s)",
		r.FromAmount.String(), r.FromCurrency, r.ToAmount.String(), r.ToCurrency, r.Rate.String())
}
