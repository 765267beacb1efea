package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side is the direction of an executed order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// TransactionRecord is one executed order in the append-only trade log.
// Records are immutable once created; history is never edited or deleted.
type TransactionRecord struct {
	ID        string
	AccountID string
	Symbol    string
	Side      Side
	Quantity  decimal.Decimal
	Price     decimal.Decimal
	CreatedAt time.Time
}

// Total returns the cash moved by this record (quantity * price).
func (r *TransactionRecord) Total() decimal.Decimal {
	return r.Quantity.Mul(r.Price)
}
