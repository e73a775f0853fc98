package swap

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

func testCatalog() entity.Catalog {
	return entity.Catalog{
		{Currency: "ETH", Price: decimal.NewFromInt(3000)},
		{Currency: "WBTC", Price: decimal.NewFromInt(60000)},
	}
}

func balances(m map[string]int64) BalanceFunc {
	return func(currency string) decimal.Decimal {
		return decimal.NewFromInt(m[currency])
	}
}

func TestValidate_InvalidAmount(t *testing.T) {
	cat := testCatalog()
	bal := balances(map[string]int64{"WBTC": 1})

	for _, amount := range []string{"", "abc", "0", "-1", "1.2.3"} {
		_, err := Validate(entity.SwapIntent{
			FromCurrency: "WBTC",
			ToCurrency:   "ETH",
			FromAmount:   amount,
		}, cat, bal)
		assert.ErrorIs(t, err, ErrInvalidAmount, "amount %q", amount)
	}
}

func TestValidate_InvalidAmountWinsOverInsufficientBalance(t *testing.T) {
	// the amount is unparseable and would also exceed the balance;
	// the first check must win
	_, err := Validate(entity.SwapIntent{
		FromCurrency: "WBTC",
		ToCurrency:   "ETH",
		FromAmount:   "99abc",
	}, testCatalog(), balances(map[string]int64{"WBTC": 1}))

	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestValidate_InsufficientBalance(t *testing.T) {
	_, err := Validate(entity.SwapIntent{
		FromCurrency: "WBTC",
		ToCurrency:   "ETH",
		FromAmount:   "2",
	}, testCatalog(), balances(map[string]int64{"WBTC": 1}))

	assert.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestValidate_SameTokenSwapRejectedBeforeRate(t *testing.T) {
	// no rate exists for WBTC/WBTC either, but the same-token check
	// must fire first
	_, err := Validate(entity.SwapIntent{
		FromCurrency: "WBTC",
		ToCurrency:   "WBTC",
		FromAmount:   "1",
	}, testCatalog(), balances(map[string]int64{"WBTC": 1}))

	assert.ErrorIs(t, err, ErrSameTokenSwap)
}

func TestValidate_RateUnavailable(t *testing.T) {
	_, err := Validate(entity.SwapIntent{
		FromCurrency: "WBTC",
		ToCurrency:   "DOGE",
		FromAmount:   "1",
	}, testCatalog(), balances(map[string]int64{"WBTC": 1}))

	assert.ErrorIs(t, err, ErrRateUnavailable)
}

func TestValidate_Pass(t *testing.T) {
	res, err := Validate(entity.SwapIntent{
		FromCurrency: "WBTC",
		ToCurrency:   "ETH",
		FromAmount:   "0.5",
	}, testCatalog(), balances(map[string]int64{"WBTC": 1}))

	require.NoError(t, err)
	assert.Equal(t, "WBTC", res.FromCurrency)
	assert.Equal(t, "ETH", res.ToCurrency)
	assert.True(t, res.FromAmount.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, res.Rate.Equal(decimal.NewFromInt(20)))
	assert.True(t, res.ToAmount.Equal(decimal.NewFromInt(10)))
}
