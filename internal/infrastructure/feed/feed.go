package feed

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/infrastructure/metrics"
)

// PriceSink receives ticks produced by the feed.
type PriceSink interface {
	SetPrice(ctx context.Context, symbol string, price decimal.Decimal) error
}

// Feed simulates a market data feed: each configured symbol follows a
// bounded random walk and every tick is written to the sink, where
// settlement and portfolio valuation pick it up as the live price.
type Feed struct {
	sink     PriceSink
	symbols  []string
	interval time.Duration
	logger   *slog.Logger
	metrics  *metrics.Metrics
	rng      *rand.Rand
	prices   map[string]decimal.Decimal
}

// Config for Feed.
type Config struct {
	Sink     PriceSink
	Symbols  []string
	Interval time.Duration
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Seed     int64 // 0 means time-based
}

// New creates a new Feed.
func New(cfg Config) *Feed {
	if cfg.Interval == 0 {
		cfg.Interval = 2 * time.Second
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Feed{
		sink:     cfg.Sink,
		symbols:  cfg.Symbols,
		interval: cfg.Interval,
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		prices:   make(map[string]decimal.Decimal),
	}
}

// Start runs the feed until the context is cancelled. Initial quotes are
// written immediately so orders can settle before the first tick.
func (f *Feed) Start(ctx context.Context) error {
	f.logger.Info("price feed started",
		slog.Int("symbols", len(f.symbols)),
		slog.Duration("interval", f.interval))

	if err := f.tick(ctx); err != nil {
		f.logger.Error("error writing initial quotes", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			f.logger.Info("price feed shutting down")
			return ctx.Err()
		case <-ticker.C:
			if err := f.tick(ctx); err != nil {
				f.logger.Error("error writing quotes", slog.String("error", err.Error()))
			}
		}
	}
}

// tick advances every symbol one step and writes the new quotes.
func (f *Feed) tick(ctx context.Context) error {
	for _, symbol := range f.symbols {
		price := f.next(symbol)

		if err := f.sink.SetPrice(ctx, symbol, price); err != nil {
			return err
		}

		if f.metrics != nil {
			f.metrics.FeedTicks.Inc()
		}
	}

	return nil
}

// next advances the random walk for a symbol. Steps are bounded to ±2% and
// the price never drops below one cent.
func (f *Feed) next(symbol string) decimal.Decimal {
	price, ok := f.prices[symbol]
	if !ok {
		// First quote: somewhere between 20 and 520.
		price = decimal.NewFromFloat(20 + f.rng.Float64()*500).Round(2)
		f.prices[symbol] = price
		return price
	}

	step := decimal.NewFromFloat(1 + (f.rng.Float64()-0.5)*0.04)
	price = price.Mul(step).Round(2)

	floor := decimal.RequireFromString("0.01")
	if price.LessThan(floor) {
		price = floor
	}

	f.prices[symbol] = price
	return price
}
