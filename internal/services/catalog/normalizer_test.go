package catalog

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

func sample(currency string, offset time.Duration, price float64) entity.PriceSample {
	base := time.Date(2023, 8, 29, 7, 0, 0, 0, time.UTC)
	return entity.PriceSample{
		Currency: currency,
		Date:     base.Add(offset),
		Price:    decimal.NewFromFloat(price),
	}
}

func TestNormalize_KeepsNewestSamplePerCurrency(t *testing.T) {
	cat := Normalize([]entity.PriceSample{
		sample("ETH", 0, 2900),
		sample("WBTC", time.Minute, 60000),
		sample("ETH", 2*time.Minute, 3000),
		sample("ETH", time.Minute, 2950),
	})

	require.Len(t, cat, 2)
	eth := cat.Find("ETH")
	require.NotNil(t, eth)
	assert.True(t, eth.Price.Equal(decimal.NewFromInt(3000)))
}

func TestNormalize_EqualDatesKeepLastEncountered(t *testing.T) {
	cat := Normalize([]entity.PriceSample{
		sample("ETH", 0, 2900),
		sample("ETH", 0, 3100),
	})

	require.Len(t, cat, 1)
	assert.True(t, cat[0].Price.Equal(decimal.NewFromInt(3100)))
}

func TestNormalize_DropsNonPositivePrices(t *testing.T) {
	cat := Normalize([]entity.PriceSample{
		sample("ETH", time.Hour, 0),
		sample("ETH", 0, 3000),
		sample("BUST", 0, -1),
	})

	require.Len(t, cat, 1)
	assert.Equal(t, "ETH", cat[0].Currency)
	// the zero-price sample is newer but must not win
	assert.True(t, cat[0].Price.Equal(decimal.NewFromInt(3000)))
}

func TestNormalize_EmptyAndAllInvalidInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]entity.PriceSample{
		sample("ETH", 0, 0),
		sample("BTC", 0, -5),
	}))
}

func TestNormalize_SortedAndIdempotent(t *testing.T) {
	input := []entity.PriceSample{
		sample("zil", 0, 0.02),
		sample("ETH", 0, 3000),
		sample("atom", 0, 7),
		sample("WBTC", 0, 60000),
	}

	first := Normalize(input)
	second := Normalize(input)

	require.Equal(t, []string{"atom", "ETH", "WBTC", "zil"}, first.Currencies())
	assert.Equal(t, first, second)
}
