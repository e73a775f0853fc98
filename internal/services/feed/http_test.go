package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFeed_Samples(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"currency":"ETH","date":"2023-08-29T07:10:40.000Z","price":2900.12},
			{"currency":"ETH","date":"2023-08-29T07:10:52.000Z","price":3000},
			{"currency":"WBTC","date":"2023-08-29T07:10:52.000Z","price":60000}
		]`))
	}))
	defer srv.Close()

	samples, err := NewHTTPFeed(srv.URL).Samples(context.Background())
	require.NoError(t, err)

	// raw samples are returned as-is, duplicates included;
	// deduplication is the normalizer's job
	require.Len(t, samples, 3)
	assert.Equal(t, "ETH", samples[0].Currency)
	assert.True(t, samples[0].Price.Equal(decimal.NewFromFloat(2900.12)))
	assert.Equal(t, 2023, samples[0].Date.Year())
	assert.True(t, samples[1].Date.After(samples[0].Date))
}

func TestHTTPFeed_StatusErrorIsFeedUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPFeed(srv.URL).Samples(context.Background())
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestHTTPFeed_DecodeErrorIsFeedUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := NewHTTPFeed(srv.URL).Samples(context.Background())
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}

func TestStaticFeed(t *testing.T) {
	samples, err := Demo().Samples(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, samples)

	_, err = NewFailingFeed(assert.AnError).Samples(context.Background())
	assert.ErrorIs(t, err, ErrFeedUnavailable)
}
