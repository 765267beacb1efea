package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Holding is an open position in one symbol. A holding with quantity <= 0
// must never exist; it is removed from the account instead.
type Holding struct {
	AccountID string
	Symbol    string
	Quantity  decimal.Decimal
	AvgPrice  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddLot folds a new purchase into the holding, recomputing the weighted
// average cost basis:
//
//	newAvg = (quantity*avgPrice + lotQuantity*lotPrice) / (quantity + lotQuantity)
func (h *Holding) AddLot(lotQuantity, lotPrice decimal.Decimal) {
	cost := lotQuantity.Mul(lotPrice)
	totalValue := h.Quantity.Mul(h.AvgPrice).Add(cost)
	newQuantity := h.Quantity.Add(lotQuantity)

	h.AvgPrice = totalValue.Div(newQuantity)
	h.Quantity = newQuantity
}

// ReduceLot removes sold quantity. The cost basis of the remaining shares
// is unaffected by a sell, so AvgPrice stays as is.
func (h *Holding) ReduceLot(soldQuantity decimal.Decimal) {
	h.Quantity = h.Quantity.Sub(soldQuantity)
}

// MarketValue returns the holding's value at the given price.
func (h *Holding) MarketValue(price decimal.Decimal) decimal.Decimal {
	return h.Quantity.Mul(price)
}

// CostBasis returns the total cost of the open position.
func (h *Holding) CostBasis() decimal.Decimal {
	return h.Quantity.Mul(h.AvgPrice)
}
