package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeOutcome describes the state changes produced by a settled order.
// The caller persists exactly what the outcome names.
type TradeOutcome struct {
	Balance        decimal.Decimal
	Holding        *Holding // nil when the position was closed
	HoldingRemoved bool
	Record         *TransactionRecord
}

// ExecuteBuy settles a buy order against the ledger. All validation runs
// before any mutation, so a rejected order leaves the ledger untouched.
func ExecuteBuy(l *Ledger, symbol string, quantity, price decimal.Decimal, now time.Time) (*TradeOutcome, error) {
	if err := ValidateOrder(symbol, quantity, price); err != nil {
		return nil, err
	}

	totalCost := quantity.Mul(price)
	if err := l.Account.ValidateDebit(totalCost); err != nil {
		return nil, err
	}

	if err := l.AdjustBalance(totalCost.Neg()); err != nil {
		return nil, err
	}

	holding, ok := l.GetHolding(symbol)
	if ok {
		holding.AddLot(quantity, price)
		holding.UpdatedAt = now
	} else {
		holding = &Holding{
			AccountID: l.Account.ID,
			Symbol:    symbol,
			Quantity:  quantity,
			AvgPrice:  price,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	l.UpsertHolding(holding)

	record := &TransactionRecord{
		AccountID: l.Account.ID,
		Symbol:    symbol,
		Side:      SideBuy,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: now,
	}
	l.AppendTransaction(record)

	return &TradeOutcome{
		Balance: l.Account.Balance,
		Holding: holding,
		Record:  record,
	}, nil
}

// ExecuteSell settles a sell order against the ledger. The average cost
// basis of the remaining shares is never changed by a sell; a position
// that reaches exactly zero quantity is removed from the account.
func ExecuteSell(l *Ledger, symbol string, quantity, price decimal.Decimal, now time.Time) (*TradeOutcome, error) {
	if err := ValidateOrder(symbol, quantity, price); err != nil {
		return nil, err
	}

	holding, ok := l.GetHolding(symbol)
	if !ok {
		return nil, ErrNoSuchHolding
	}

	if holding.Quantity.LessThan(quantity) {
		return nil, ErrInsufficientHoldings
	}

	proceeds := quantity.Mul(price)
	if err := l.AdjustBalance(proceeds); err != nil {
		return nil, err
	}

	holding.ReduceLot(quantity)

	outcome := &TradeOutcome{Balance: l.Account.Balance}

	if holding.Quantity.IsZero() {
		l.RemoveHolding(symbol)
		outcome.HoldingRemoved = true
	} else {
		holding.UpdatedAt = now
		outcome.Holding = holding
	}

	record := &TransactionRecord{
		AccountID: l.Account.ID,
		Symbol:    symbol,
		Side:      SideSell,
		Quantity:  quantity,
		Price:     price,
		CreatedAt: now,
	}
	l.AppendTransaction(record)
	outcome.Record = record

	return outcome, nil
}
