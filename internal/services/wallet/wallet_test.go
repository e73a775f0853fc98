package wallet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vadiminshakov/tokenswap/internal/entity"
)

func TestWallet_BalanceOfUnknownCurrencyIsZero(t *testing.T) {
	w := New()
	assert.True(t, w.BalanceOf("WBTC").IsZero())
}

func TestWallet_DepositAccumulates(t *testing.T) {
	w := New()
	w.Deposit("ETH", decimal.NewFromInt(3))
	w.Deposit("ETH", decimal.NewFromInt(2))

	assert.True(t, w.BalanceOf("ETH").Equal(decimal.NewFromInt(5)))
}

func TestWallet_CommitDebitsAndCreditsExactly(t *testing.T) {
	w := New()
	w.Deposit("A", decimal.NewFromInt(100))
	w.Deposit("C", decimal.NewFromInt(7))

	w.Commit(entity.SwapResult{
		FromCurrency: "A",
		ToCurrency:   "B",
		FromAmount:   decimal.NewFromInt(40),
		ToAmount:     decimal.NewFromInt(2),
	})

	assert.True(t, w.BalanceOf("A").Equal(decimal.NewFromInt(60)))
	assert.True(t, w.BalanceOf("B").Equal(decimal.NewFromInt(2)))
	// unrelated currency untouched
	assert.True(t, w.BalanceOf("C").Equal(decimal.NewFromInt(7)))
}

func TestWallet_BalancesReturnsCopy(t *testing.T) {
	w := New()
	w.Deposit("ETH", decimal.NewFromInt(1))

	snapshot := w.Balances()
	snapshot["ETH"] = decimal.NewFromInt(999)

	assert.True(t, w.BalanceOf("ETH").Equal(decimal.NewFromInt(1)))
}
