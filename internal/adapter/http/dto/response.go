package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/usecase"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Owner     string          `json:"owner"`
	Balance   decimal.Decimal `json:"balance"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Owner:     a.Owner,
		Balance:   a.Balance,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// HoldingResponse represents a holding in API responses.
type HoldingResponse struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	AvgPrice decimal.Decimal `json:"avg_price"`
}

// HoldingFromDomain converts a domain holding to a response.
func HoldingFromDomain(h *domain.Holding) *HoldingResponse {
	return &HoldingResponse{
		Symbol:   h.Symbol,
		Quantity: h.Quantity,
		AvgPrice: h.AvgPrice,
	}
}

// BuyResponse is returned from a settled buy order.
type BuyResponse struct {
	Message string           `json:"message"`
	Balance decimal.Decimal  `json:"balance"`
	Holding *HoldingResponse `json:"holding"`
}

// SellResponse is returned from a settled sell order. The holding may no
// longer exist after a sell, so only the balance is echoed back.
type SellResponse struct {
	Message string          `json:"message"`
	Balance decimal.Decimal `json:"balance"`
}

// PositionResponse is one valued holding in a portfolio response.
type PositionResponse struct {
	Symbol        string          `json:"symbol"`
	Quantity      decimal.Decimal `json:"quantity"`
	AvgPrice      decimal.Decimal `json:"avg_price"`
	LastPrice     decimal.Decimal `json:"last_price"`
	MarketValue   decimal.Decimal `json:"market_value"`
	UnrealizedPnL decimal.Decimal `json:"unrealized_pnl"`
	Priced        bool            `json:"priced"`
}

// PortfolioResponse represents a valued portfolio.
type PortfolioResponse struct {
	AccountID string             `json:"account_id"`
	Balance   decimal.Decimal    `json:"balance"`
	Equity    decimal.Decimal    `json:"equity"`
	Positions []PositionResponse `json:"positions"`
}

// PortfolioFromView converts a portfolio view to a response.
func PortfolioFromView(view *usecase.PortfolioView) *PortfolioResponse {
	resp := &PortfolioResponse{
		AccountID: view.Account.ID,
		Balance:   view.Account.Balance,
		Equity:    view.Equity,
		Positions: make([]PositionResponse, len(view.Positions)),
	}

	for i, p := range view.Positions {
		resp.Positions[i] = PositionResponse{
			Symbol:        p.Holding.Symbol,
			Quantity:      p.Holding.Quantity,
			AvgPrice:      p.Holding.AvgPrice,
			LastPrice:     p.LastPrice,
			MarketValue:   p.MarketValue,
			UnrealizedPnL: p.UnrealizedPnL,
			Priced:        p.Priced,
		}
	}

	return resp
}

// TransactionResponse represents a trade record in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Side      string          `json:"side"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// TransactionsFromDomain converts domain records to responses.
func TransactionsFromDomain(records []*domain.TransactionRecord) []*TransactionResponse {
	result := make([]*TransactionResponse, len(records))
	for i, r := range records {
		result[i] = &TransactionResponse{
			ID:        r.ID,
			Symbol:    r.Symbol,
			Side:      string(r.Side),
			Quantity:  r.Quantity,
			Price:     r.Price,
			CreatedAt: r.CreatedAt,
		}
	}
	return result
}

// PriceResponse represents a quoted price.
type PriceResponse struct {
	Symbol string          `json:"symbol"`
	Price  decimal.Decimal `json:"price"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
