package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Ledger is the in-memory view of one account's bookkeeping state: cash
// balance, holdings keyed by symbol, and the transactions appended during
// the current settlement. It is built from persisted state at the start of
// a settlement and flushed back by the caller afterwards.
type Ledger struct {
	Account  *Account
	holdings map[string]*Holding
	appended []*TransactionRecord
}

// NewLedger builds a ledger for the account with its current holdings.
func NewLedger(account *Account, holdings []*Holding) *Ledger {
	m := make(map[string]*Holding, len(holdings))
	for _, h := range holdings {
		m[h.Symbol] = h
	}

	return &Ledger{
		Account:  account,
		holdings: m,
	}
}

// GetHolding returns the holding for symbol, if present.
func (l *Ledger) GetHolding(symbol string) (*Holding, bool) {
	h, ok := l.holdings[symbol]
	return h, ok
}

// UpsertHolding inserts or replaces the holding for its symbol.
func (l *Ledger) UpsertHolding(h *Holding) {
	l.holdings[h.Symbol] = h
}

// RemoveHolding deletes the holding for symbol, if present.
func (l *Ledger) RemoveHolding(symbol string) {
	delete(l.holdings, symbol)
}

// Holdings returns all holdings sorted by symbol.
func (l *Ledger) Holdings() []*Holding {
	out := make([]*Holding, 0, len(l.holdings))
	for _, h := range l.holdings {
		out = append(out, h)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })

	return out
}

// AdjustBalance applies delta to the account balance. It rejects any
// adjustment that would drive the balance negative; the settlement engine
// has already checked sufficiency, so this is a second line of defense.
func (l *Ledger) AdjustBalance(delta decimal.Decimal) error {
	newBalance := l.Account.Balance.Add(delta)
	if newBalance.IsNegative() {
		return ErrInvalidOrder
	}

	l.Account.Balance = newBalance

	return nil
}

// AppendTransaction records an executed order. The log is append-only.
func (l *Ledger) AppendTransaction(record *TransactionRecord) {
	l.appended = append(l.appended, record)
}

// Transactions returns the records appended during this settlement, in
// chronological order.
func (l *Ledger) Transactions() []*TransactionRecord {
	return l.appended
}
