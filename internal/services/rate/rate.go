package rate

import (
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// Calculate returns the exchange rate between two tokens as
// from.Price / to.Price. Zero is the "no rate available" sentinel,
// returned when either token is absent or has a zero price; callers
// must not read it as a literal zero rate.
func Calculate(from, to *entity.Token) decimal.Decimal {
	if from == nil || to == nil || from.Price.IsZero() || to.Price.IsZero() {
		return decimal.Zero
	}
	return from.Price.Div(to.Price)
}
