package transfer

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/tokenswap/internal/entity"
	"go.uber.org/zap"
)

func testResult() entity.SwapResult {
	return entity.SwapResult{
		FromCurrency: "WBTC",
		ToCurrency:   "ETH",
		FromAmount:   decimal.NewFromFloat(0.5),
		ToAmount:     decimal.NewFromInt(10),
		Rate:         decimal.NewFromInt(20),
	}
}

func TestSimulated_SettlesAfterDelay(t *testing.T) {
	ex := NewSimulated(10*time.Millisecond, zap.NewNop())

	start := time.Now()
	err := ex.Execute(context.Background(), testResult())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSimulated_CancelledContext(t *testing.T) {
	ex := NewSimulated(time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ex.Execute(ctx, testResult())
	assert.ErrorIs(t, err, context.Canceled)
}
