package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/domain"
)

// PriceStore keeps the latest quote per symbol in Redis. It is the read
// side of the price feed: the feed worker writes ticks, settlement and
// portfolio valuation read them through usecase.PriceOracle.
type PriceStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewPriceStore creates a new PriceStore. Quotes expire after ttl so a
// stalled feed surfaces as ErrPriceUnavailable instead of stale fills.
func NewPriceStore(client *redis.Client, ttl time.Duration) *PriceStore {
	return &PriceStore{
		client: client,
		prefix: "price:",
		ttl:    ttl,
	}
}

// GetPrice returns the latest quote for a symbol.
func (s *PriceStore) GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error) {
	val, err := s.client.Get(ctx, s.prefix+symbol).Result()
	if err == redis.Nil {
		return decimal.Zero, domain.ErrPriceUnavailable
	}
	if err != nil {
		return decimal.Zero, err
	}

	price, err := decimal.NewFromString(val)
	if err != nil || !price.IsPositive() {
		return decimal.Zero, domain.ErrPriceUnavailable
	}

	return price, nil
}

// SetPrice stores the latest quote for a symbol.
func (s *PriceStore) SetPrice(ctx context.Context, symbol string, price decimal.Decimal) error {
	return s.client.Set(ctx, s.prefix+symbol, price.String(), s.ttl).Err()
}

// Symbols lists the symbols that currently have a live quote.
func (s *PriceStore) Symbols(ctx context.Context) ([]string, error) {
	keys, err := s.client.Keys(ctx, s.prefix+"*").Result()
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(keys))
	for _, key := range keys {
		symbols = append(symbols, key[len(s.prefix):])
	}

	return symbols, nil
}
