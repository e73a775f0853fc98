package feed

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// StaticFeed serves a fixed sample set. It backs the simulate mode
// and doubles as a test feed.
type StaticFeed struct {
	samples []entity.PriceSample
	err     error
}

// NewStaticFeed creates a feed that always returns the given samples.
func NewStaticFeed(samples []entity.PriceSample) *StaticFeed {
	return &StaticFeed{samples: samples}
}

// NewFailingFeed creates a feed whose every fetch fails with the
// given reason, reported as ErrFeedUnavailable.
func NewFailingFeed(err error) *StaticFeed {
	return &StaticFeed{err: err}
}

func (f *StaticFeed) Samples(ctx context.Context) ([]entity.PriceSample, error) {
	if f.err != nil {
		return nil, errors.Wrapf(ErrFeedUnavailable, "static feed: %v", f.err)
	}
	out := make([]entity.PriceSample, len(f.samples))
	copy(out, f.samples)
	return out, nil
}

// Demo returns a static feed with a small set of priced tokens for
// running the form offline.
func Demo() *StaticFeed {
	now := time.Now().UTC()
	return NewStaticFeed([]entity.PriceSample{
		{Currency: "WBTC", Date: now, Price: decimal.NewFromInt(60000)},
		{Currency: "ETH", Date: now, Price: decimal.NewFromInt(3000)},
		{Currency: "USDC", Date: now, Price: decimal.NewFromInt(1)},
		{Currency: "ATOM", Date: now, Price: decimal.NewFromFloat(7.18)},
		{Currency: "SWTH", Date: now, Price: decimal.NewFromFloat(0.004)},
	})
}
