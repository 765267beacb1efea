package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/adapter/http/dto"
)

func TestPortfolioValuation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	env := newTestEnv(t)

	account := env.DB.CreateTestAccount(ctx, "investor", decimal.NewFromInt(2500))
	env.DB.CreateTestHolding(ctx, account.ID, "AAPL", decimal.NewFromInt(10), decimal.NewFromInt(100))
	env.DB.CreateTestHolding(ctx, account.ID, "MSFT", decimal.NewFromInt(4), decimal.NewFromInt(200))

	env.setPrice(t, "AAPL", "120")
	// MSFT has no live quote; the position degrades to cost basis.

	w := env.do(t, http.MethodGet, "/api/v1/accounts/"+account.ID+"/portfolio", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp dto.PortfolioResponse
	decode(t, w, &resp)

	if resp.AccountID != account.ID {
		t.Errorf("expected account ID %q, got %q", account.ID, resp.AccountID)
	}
	if !resp.Balance.Equal(decimal.NewFromInt(2500)) {
		t.Errorf("expected balance 2500, got %s", resp.Balance)
	}
	if len(resp.Positions) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(resp.Positions))
	}

	positions := make(map[string]dto.PositionResponse, len(resp.Positions))
	for _, p := range resp.Positions {
		positions[p.Symbol] = p
	}

	aapl, ok := positions["AAPL"]
	if !ok {
		t.Fatalf("expected AAPL position")
	}
	if !aapl.Priced {
		t.Errorf("expected AAPL to be priced")
	}
	if !aapl.MarketValue.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected AAPL market value 1200, got %s", aapl.MarketValue)
	}
	if !aapl.UnrealizedPnL.Equal(decimal.NewFromInt(200)) {
		t.Errorf("expected AAPL unrealized PnL 200, got %s", aapl.UnrealizedPnL)
	}

	msft, ok := positions["MSFT"]
	if !ok {
		t.Fatalf("expected MSFT position")
	}
	if msft.Priced {
		t.Errorf("expected MSFT to be unpriced without a quote")
	}
	if !msft.MarketValue.Equal(decimal.NewFromInt(800)) {
		t.Errorf("expected MSFT valued at cost basis 800, got %s", msft.MarketValue)
	}

	// Equity = cash + AAPL at market + MSFT at cost.
	if !resp.Equity.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("expected equity 4500, got %s", resp.Equity)
	}
}

func TestPortfolioEmptyAccount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	env := newTestEnv(t)

	account := env.DB.CreateTestAccount(ctx, "cash-only", decimal.NewFromInt(777))

	w := env.do(t, http.MethodGet, "/api/v1/accounts/"+account.ID+"/portfolio", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, w.Code, w.Body.String())
	}

	var resp dto.PortfolioResponse
	decode(t, w, &resp)

	if len(resp.Positions) != 0 {
		t.Errorf("expected no positions, got %d", len(resp.Positions))
	}
	if !resp.Equity.Equal(decimal.NewFromInt(777)) {
		t.Errorf("expected equity to equal cash, got %s", resp.Equity)
	}
}
