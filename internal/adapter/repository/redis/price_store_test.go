package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/domain"
)

func TestPriceStoreRoundTrip(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewPriceStore(client, time.Minute)

	if err := store.SetPrice(context.Background(), "AAPL", decimal.RequireFromString("123.45")); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	price, err := store.GetPrice(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("123.45")) {
		t.Fatalf("expected 123.45, got %s", price)
	}
}

func TestPriceStoreMissingSymbol(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewPriceStore(client, time.Minute)

	_, err := store.GetPrice(context.Background(), "NOPE")
	if !errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("expected ErrPriceUnavailable, got %v", err)
	}
}

func TestPriceStoreStaleQuoteExpires(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewPriceStore(client, time.Minute)

	if err := store.SetPrice(context.Background(), "AAPL", decimal.NewFromInt(100)); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, err := store.GetPrice(context.Background(), "AAPL")
	if !errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("expected stale quote to be unavailable, got %v", err)
	}
}

func TestPriceStoreGarbageValue(t *testing.T) {
	client, mr := newTestRedisClient(t)
	store := NewPriceStore(client, time.Minute)

	mr.Set("price:AAPL", "not-a-number")

	_, err := store.GetPrice(context.Background(), "AAPL")
	if !errors.Is(err, domain.ErrPriceUnavailable) {
		t.Fatalf("expected ErrPriceUnavailable, got %v", err)
	}
}

func TestPriceStoreSymbols(t *testing.T) {
	client, _ := newTestRedisClient(t)
	store := NewPriceStore(client, time.Minute)

	for _, sym := range []string{"AAPL", "TCS"} {
		if err := store.SetPrice(context.Background(), sym, decimal.NewFromInt(10)); err != nil {
			t.Fatalf("set failed: %v", err)
		}
	}

	symbols, err := store.Symbols(context.Background())
	if err != nil {
		t.Fatalf("symbols failed: %v", err)
	}
	if len(symbols) != 2 {
		t.Fatalf("expected 2 symbols, got %v", symbols)
	}
}
