package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PriceSample is one raw entry from a price feed. Feeds may repeat a
// currency with different dates and may carry non-positive prices, so
// samples are not usable directly: they must be normalized into a
// Catalog first.
type PriceSample struct {
	Currency string          `json:"currency"`
	Date     time.Time       `json:"date"`
	Price    decimal.Decimal `json:"price"`
}

// Token is a tradable catalog entry. Identity is the currency code.
// Balances are tracked by the wallet, not here.
type Token struct {
	Currency string
	Price    decimal.Decimal
}

// Catalog is a deduplicated token list sorted by currency. Every
// token in a catalog has a positive price.
type Catalog []Token

// Find returns the token for the given currency, or nil if the
// catalog does not list it.
func (c Catalog) Find(currency string) *Token {
	for i := range c {
		if c[i].Currency == currency {
			return &c[i]
		}
	}
	return nil
}

// Currencies returns the currency codes in catalog order.
func (c Catalog) Currencies() []string {
	out := make([]string, len(c))
	for i, t := range c {
		out[i] = t.Currency
	}
	return out
}

// Less orders tokens by currency, case-insensitively with an ordinal
// tiebreak so the order is total even for mixed-case feeds.
func (c Catalog) Less(i, j int) bool {
	a, b := strings.ToLower(c[i].Currency), strings.ToLower(c[j].Currency)
	if a != b {
		return a < b
	}
	return c[i].Currency < c[j].Currency
}

// Pair is a from/to currency pair.
type Pair struct {
	From string
	To   string
}

func (p *Pair) String() string {
	return fmt.Sprintf("%s_%s", p.From, p.To)
}
