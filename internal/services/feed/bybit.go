package feed

import (
	"context"
	"strings"
	"time"

	"github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// BybitFeed samples spot tickers from the Bybit V5 public market API.
// Same quote-suffix convention as the Binance feed.
type BybitFeed struct {
	client *bybit.Client
	quote  string
}

// NewBybitFeed creates a Bybit-backed feed quoting in USDT.
func NewBybitFeed(client *bybit.Client) *BybitFeed {
	return &BybitFeed{client: client, quote: "USDT"}
}

func (f *BybitFeed) Samples(ctx context.Context) ([]entity.PriceSample, error) {
	result, err := f.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
		Category: bybit.CategoryV5Spot,
	})
	if err != nil {
		return nil, errors.Wrapf(ErrFeedUnavailable, "bybit tickers: %v", err)
	}

	now := time.Now().UTC()
	samples := make([]entity.PriceSample, 0, len(result.Result.Spot.List))
	for _, t := range result.Result.Spot.List {
		currency, ok := strings.CutSuffix(string(t.Symbol), f.quote)
		if !ok || currency == "" {
			continue
		}
		price, err := decimal.NewFromString(t.LastPrice)
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
