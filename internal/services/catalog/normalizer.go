package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// Normalize builds a catalog from raw feed samples. Samples with
// non-positive prices are dropped, the newest sample wins per
// currency (equal dates keep the later one in input order), and the
// result is sorted by currency. Empty or all-invalid input yields an
// empty catalog, never an error.
func Normalize(samples []entity.PriceSample) entity.Catalog {
	latest := make(map[string]entity.PriceSample, len(samples))
	for _, s := range samples {
		if s.Price.LessThanOrEqual(decimal.Zero) {
			continue
		}
		prev, ok := latest[s.Currency]
		if !ok || !s.Date.Before(prev.Date) {
			latest[s.Currency] = s
		}
	}

	cat := make(entity.Catalog, 0, len(latest))
	for _, s := range latest {
		cat = append(cat, entity.Token{Currency: s.Currency, Price: s.Price})
	}
	sort.Slice(cat, cat.Less)

	return cat
}
