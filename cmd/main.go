// Command tokenswap runs an interactive token swap form in the
// terminal. Prices come from a public feed (HTTP price list, Binance
// or Bybit spot tickers, or a built-in static set) and swaps settle
// against an in-memory wallet through a simulated transfer.
//
// Usage:
//
//	tokenswap --config config.yaml
//	tokenswap --source binance --pair WBTC_ETH --balance 1000
package main

import (
	"context"
	"log"

	"github.com/adshao/go-binance/v2"
	"github.com/hirokisan/bybit/v2"
	"github.com/vadiminshakov/tokenswap/config"
	"github.com/vadiminshakov/tokenswap/internal/services/feed"
	"github.com/vadiminshakov/tokenswap/internal/services/swap"
	"github.com/vadiminshakov/tokenswap/internal/services/transfer"
	"github.com/vadiminshakov/tokenswap/internal/services/wallet"
	"github.com/vadiminshakov/tokenswap/internal/setup"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var f feed.Feed
	switch cfg.Source {
	case "binance":
		f = feed.NewBinanceFeed(binance.NewClient("", ""))
	case "bybit":
		f = feed.NewBybitFeed(bybit.NewClient())
	case "static":
		f = feed.Demo()
	default:
		f = feed.NewHTTPFeed(cfg.FeedURL)
	}

	w := wallet.New()
	for currency, amount := range cfg.Balances {
		w.Deposit(currency, amount)
	}

	sess, err := swap.NewSession(f, w, transfer.NewSimulated(cfg.TransferDelay, logger), logger, swap.Options{
		DefaultPair:    cfg.DefaultPair,
		PercentPresets: cfg.PercentPresets,
		SuccessDisplay: cfg.SuccessDisplay,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer sess.Close()

	ctx := context.Background()
	if err := sess.LoadCatalog(ctx); err != nil {
		logger.Warn("initial catalog load failed", zap.Error(err))
	}

	if err := setup.RunSwapForm(ctx, sess); err != nil {
		log.Fatal(err)
	}
}
