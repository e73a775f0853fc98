package feed

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// ErrFeedUnavailable marks any provider failure. It is surfaced as a
// page-level condition, distinct from form validation errors.
var ErrFeedUnavailable = errors.New("price feed unavailable")

// Feed returns the full set of current price samples.
type Feed interface {
	Samples(ctx context.Context) ([]entity.PriceSample, error)
}
