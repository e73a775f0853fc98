package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vadiminshakov/tokenswap/internal/entity"
	"gopkg.in/yaml.v3"
)

// Config describes one swap session: where prices come from, the
// default token selection, the percentage shortcuts and the seeded
// balances.
type Config struct {
	Source         string
	FeedURL        string
	DefaultPair    entity.Pair
	PercentPresets []int
	TransferDelay  time.Duration
	SuccessDisplay time.Duration
	Balances       map[string]decimal.Decimal
}

type configTmp struct {
	Source         string            `yaml:"source"`
	FeedURL        string            `yaml:"feed_url,omitempty"`
	DefaultPair    string            `yaml:"default_pair,omitempty"`
	PercentPresets []int             `yaml:"percent_presets,omitempty"`
	TransferDelay  time.Duration     `yaml:"transfer_delay,omitempty"`
	SuccessDisplay time.Duration     `yaml:"success_display,omitempty"`
	Balances       map[string]string `yaml:"balances,omitempty"`
}

var sources = map[string]bool{"http": true, "binance": true, "bybit": true, "static": true}

// Get reads configuration from a yaml file when --config is set,
// otherwise from CLI flags.
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	source := flag.String("source", "http", "price feed source: http, binance, bybit or static")
	feedURL := flag.String("feedurl", "", "price list URL for the http source")
	pairFlag := flag.String("pair", "WBTC_ETH", "preferred default pair, example: WBTC_ETH")
	balanceFlag := flag.String("balance", "1000", "starting balance on the default from side")
	transferDelay := flag.Duration("transferdelay", 1500*time.Millisecond, "simulated transfer settle delay")
	successDisplay := flag.Duration("successdisplay", 3*time.Second, "how long the success state is shown")
	flag.Parse()

	if *configPath != "" {
		return getYaml(*configPath)
	}

	pair, err := getPairFromString(*pairFlag)
	if err != nil {
		return Config{}, err
	}
	balance, err := decimal.NewFromString(*balanceFlag)
	if err != nil || balance.IsNegative() {
		return Config{}, fmt.Errorf("invalid --balance provided, --balance=%s", *balanceFlag)
	}

	cfg := Config{
		Source:         *source,
		FeedURL:        *feedURL,
		DefaultPair:    pair,
		TransferDelay:  *transferDelay,
		SuccessDisplay: *successDisplay,
		Balances:       map[string]decimal.Decimal{pair.From: balance},
	}
	return cfg, validate(cfg)
}

func getYaml(path string) (Config, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var tmp configTmp
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, err
	}

	pair := entity.Pair{From: "WBTC", To: "ETH"}
	if tmp.DefaultPair != "" {
		pair, err = getPairFromString(tmp.DefaultPair)
		if err != nil {
			return Config{}, err
		}
	}

	balances := make(map[string]decimal.Decimal, len(tmp.Balances))
	for currency, raw := range tmp.Balances {
		b, err := decimal.NewFromString(raw)
		if err != nil || b.IsNegative() {
			return Config{}, fmt.Errorf("invalid balance for %s: %s", currency, raw)
		}
		balances[currency] = b
	}

	cfg := Config{
		Source:         tmp.Source,
		FeedURL:        tmp.FeedURL,
		DefaultPair:    pair,
		PercentPresets: tmp.PercentPresets,
		TransferDelay:  tmp.TransferDelay,
		SuccessDisplay: tmp.SuccessDisplay,
		Balances:       balances,
	}
	if cfg.Source == "" {
		cfg.Source = "http"
	}
	if cfg.TransferDelay == 0 {
		cfg.TransferDelay = 1500 * time.Millisecond
	}
	if cfg.SuccessDisplay == 0 {
		cfg.SuccessDisplay = 3 * time.Second
	}
	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	if !sources[cfg.Source] {
		return fmt.Errorf("unsupported source: %s", cfg.Source)
	}
	for _, p := range cfg.PercentPresets {
		if p <= 0 || p > 100 {
			return fmt.Errorf("invalid percent preset: %d", p)
		}
	}
	return nil
}

func getPairFromString(raw string) (entity.Pair, error) {
	parts := strings.Split(raw, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return entity.Pair{}, fmt.Errorf("invalid pair provided: %s", raw)
	}
	return entity.Pair{From: parts[0], To: parts[1]}, nil
}
