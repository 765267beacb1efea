package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLedger_AdjustBalance(t *testing.T) {
	tests := []struct {
		name        string
		balance     decimal.Decimal
		delta       decimal.Decimal
		expectError bool
	}{
		{
			name:    "credit",
			balance: decimal.NewFromInt(100),
			delta:   decimal.NewFromInt(50),
		},
		{
			name:    "debit within balance",
			balance: decimal.NewFromInt(100),
			delta:   decimal.NewFromInt(-100),
		},
		{
			name:        "debit past zero",
			balance:     decimal.NewFromInt(100),
			delta:       decimal.NewFromInt(-101),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(&Account{ID: "a", Balance: tt.balance}, nil)

			err := l.AdjustBalance(tt.delta)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidOrder) {
					t.Errorf("expected ErrInvalidOrder, got %v", err)
				}
				if !l.Account.Balance.Equal(tt.balance) {
					t.Errorf("balance changed on rejected adjustment: %s", l.Account.Balance)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := tt.balance.Add(tt.delta)
			if !l.Account.Balance.Equal(want) {
				t.Errorf("expected balance %s, got %s", want, l.Account.Balance)
			}
		})
	}
}

func TestLedger_HoldingAccessors(t *testing.T) {
	l := NewLedger(&Account{ID: "a"}, []*Holding{
		{Symbol: "TCS", Quantity: decimal.NewFromInt(1), AvgPrice: decimal.NewFromInt(10)},
	})

	if _, ok := l.GetHolding("MISSING"); ok {
		t.Error("expected absent holding")
	}

	h, ok := l.GetHolding("TCS")
	if !ok {
		t.Fatal("expected TCS holding")
	}
	if !h.Quantity.Equal(decimal.NewFromInt(1)) {
		t.Errorf("unexpected quantity %s", h.Quantity)
	}

	l.UpsertHolding(&Holding{Symbol: "INFY", Quantity: decimal.NewFromInt(2), AvgPrice: decimal.NewFromInt(5)})
	if got := len(l.Holdings()); got != 2 {
		t.Fatalf("expected 2 holdings, got %d", got)
	}

	// Holdings are returned sorted by symbol.
	holdings := l.Holdings()
	if holdings[0].Symbol != "INFY" || holdings[1].Symbol != "TCS" {
		t.Errorf("holdings not sorted: %s, %s", holdings[0].Symbol, holdings[1].Symbol)
	}

	l.RemoveHolding("TCS")
	if _, ok := l.GetHolding("TCS"); ok {
		t.Error("holding still present after removal")
	}
}
