package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/usecase"
)

// OpenAccountRequest represents a request to open a trading account.
type OpenAccountRequest struct {
	Owner string `json:"owner"`
}

// ToUseCaseInput converts to use case input.
func (r *OpenAccountRequest) ToUseCaseInput() usecase.OpenAccountInput {
	return usecase.OpenAccountInput{Owner: r.Owner}
}

// OrderRequest represents a buy or sell order intent. Price is optional:
// when settlement is configured to trust client prices a positive value is
// used as the execution price, otherwise it is ignored and the oracle
// price at settlement time wins.
type OrderRequest struct {
	Symbol   string          `json:"symbol"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ToUseCaseInput converts to use case input for the given account.
func (r *OrderRequest) ToUseCaseInput(accountID string) usecase.OrderInput {
	return usecase.OrderInput{
		AccountID: accountID,
		Symbol:    r.Symbol,
		Quantity:  r.Quantity,
		Price:     r.Price,
	}
}
