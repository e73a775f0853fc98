package feed

import (
	"context"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// BinanceFeed samples spot prices from the Binance public API without
// requiring authentication. Symbols quoted in the configured quote
// currency become catalog currencies (symbol minus the suffix).
type BinanceFeed struct {
	client *binance.Client
	quote  string
}

// NewBinanceFeed creates a Binance-backed feed quoting in USDT.
func NewBinanceFeed(client *binance.Client) *BinanceFeed {
	return &BinanceFeed{client: client, quote: "USDT"}
}

func (f *BinanceFeed) Samples(ctx context.Context) ([]entity.PriceSample, error) {
	prices, err := f.client.NewListPricesService().Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(ErrFeedUnavailable, "binance list prices: %v", err)
	}

	now := time.Now().UTC()
	samples := make([]entity.PriceSample, 0, len(prices))
	for _, p := range prices {
		currency, ok := strings.CutSuffix(p.Symbol, f.quote)
		if !ok || currency == "" {
			continue
		}
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			continue
		}
		samples = append(samples, entity.PriceSample{
			Currency: currency,
			Date:     now,
			Price:    price,
		})
	}

	return samples, nil
}
