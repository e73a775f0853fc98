package feed

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

// DefaultURL is the public price list the form was built against.
const DefaultURL = "https://interview.switcheo.com/prices.json"

const httpTimeout = 10 * time.Second

// HTTPFeed fetches a JSON price list of the shape
// [{"currency","date","price"}].
type HTTPFeed struct {
	url    string
	client *http.Client
}

// NewHTTPFeed creates a feed for the given URL, falling back to
// DefaultURL when empty.
func NewHTTPFeed(url string) *HTTPFeed {
	if url == "" {
		url = DefaultURL
	}
	return &HTTPFeed{
		url:    url,
		client: &http.Client{Timeout: httpTimeout},
	}
}

// Samples fetches and decodes the price list. Any transport, status
// or decode failure is reported as ErrFeedUnavailable.
func (f *HTTPFeed) Samples(ctx context.Context) ([]entity.PriceSample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrFeedUnavailable, "build request: %v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrFeedUnavailable, "fetch %s: %v", f.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrFeedUnavailable, "fetch %s: status %d", f.url, resp.StatusCode)
	}

	var samples []entity.PriceSample
	if err := json.NewDecoder(resp.Body).Decode(&samples); err != nil {
		return nil, errors.Wrapf(ErrFeedUnavailable, "decode %s: %v", f.url, err)
	}

	return samples, nil
}
