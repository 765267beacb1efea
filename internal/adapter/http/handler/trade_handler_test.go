package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/adapter/http/dto"
	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/usecase"
)

type tradeServiceStub struct {
	buyFn  func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error)
	sellFn func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error)
}

func (s *tradeServiceStub) ExecuteBuy(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
	return s.buyFn(ctx, input)
}

func (s *tradeServiceStub) ExecuteSell(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
	return s.sellFn(ctx, input)
}

func orderBody(t *testing.T, symbol string, quantity, price int64) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(dto.OrderRequest{
		Symbol:   symbol,
		Quantity: decimal.NewFromInt(quantity),
		Price:    decimal.NewFromInt(price),
	})
	if err != nil {
		t.Fatalf("failed to marshal order: %v", err)
	}

	return bytes.NewReader(body)
}

func TestTradeHandler_Buy_Success(t *testing.T) {
	outcome := &domain.TradeOutcome{
		Balance: decimal.NewFromInt(9000),
		Holding: &domain.Holding{
			AccountID: "acc-1",
			Symbol:    "AAPL",
			Quantity:  decimal.NewFromInt(10),
			AvgPrice:  decimal.NewFromInt(100),
		},
		Record: &domain.TransactionRecord{
			ID:       "rec-1",
			Symbol:   "AAPL",
			Side:     domain.SideBuy,
			Quantity: decimal.NewFromInt(10),
			Price:    decimal.NewFromInt(100),
		},
	}

	var captured usecase.OrderInput
	handler := NewTradeHandler(&tradeServiceStub{
		buyFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
			captured = input
			return outcome, nil
		},
		sellFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/orders/buy", orderBody(t, "AAPL", 10, 100))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Buy(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != "acc-1" || captured.Symbol != "AAPL" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.BuyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Successfully bought 10 shares of AAPL" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if !resp.Balance.Equal(decimal.NewFromInt(9000)) {
		t.Fatalf("expected balance 9000, got %s", resp.Balance)
	}
	if resp.Holding == nil || !resp.Holding.Quantity.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected holding in response, got %+v", resp.Holding)
	}
}

func TestTradeHandler_Buy_InsufficientBalance(t *testing.T) {
	handler := NewTradeHandler(&tradeServiceStub{
		buyFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
			return nil, domain.ErrInsufficientBalance
		},
		sellFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/orders/buy", orderBody(t, "AAPL", 10, 100))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Buy(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Insufficient balance" {
		t.Fatalf("expected Insufficient balance, got %q", resp.Error)
	}
}

func TestTradeHandler_Buy_InvalidJSON(t *testing.T) {
	handler := NewTradeHandler(&tradeServiceStub{
		buyFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
			t.Fatal("ExecuteBuy should not be called for invalid payload")
			return nil, nil
		},
		sellFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/orders/buy", bytes.NewBufferString("{oops"))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Buy(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTradeHandler_Sell_Success(t *testing.T) {
	outcome := &domain.TradeOutcome{
		Balance:        decimal.NewFromInt(10150),
		HoldingRemoved: true,
		Record: &domain.TransactionRecord{
			ID:       "rec-2",
			Symbol:   "TCS",
			Side:     domain.SideSell,
			Quantity: decimal.NewFromInt(5),
			Price:    decimal.NewFromInt(30),
		},
	}

	handler := NewTradeHandler(&tradeServiceStub{
		sellFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
			return outcome, nil
		},
		buyFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/orders/sell", orderBody(t, "TCS", 5, 30))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Sell(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.SellResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "Successfully sold 5 shares of TCS" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
	if !resp.Balance.Equal(decimal.NewFromInt(10150)) {
		t.Fatalf("expected balance 10150, got %s", resp.Balance)
	}
}

func TestTradeHandler_Sell_InsufficientHoldings(t *testing.T) {
	handler := NewTradeHandler(&tradeServiceStub{
		sellFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
			return nil, domain.ErrInsufficientHoldings
		},
		buyFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/acc-1/orders/sell", orderBody(t, "TCS", 50, 30))
	req = setChiURLParam(req, "id", "acc-1")
	rec := httptest.NewRecorder()

	handler.Sell(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Insufficient holdings to sell" {
		t.Fatalf("expected Insufficient holdings to sell, got %q", resp.Error)
	}
}

func TestTradeHandler_Sell_AccountNotFound(t *testing.T) {
	handler := NewTradeHandler(&tradeServiceStub{
		sellFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) {
			return nil, domain.ErrAccountNotFound
		},
		buyFn: func(ctx context.Context, input usecase.OrderInput) (*domain.TradeOutcome, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/accounts/missing/orders/sell", orderBody(t, "TCS", 5, 30))
	req = setChiURLParam(req, "id", "missing")
	rec := httptest.NewRecorder()

	handler.Sell(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
