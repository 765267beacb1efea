package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/domain"
)

// PortfolioUseCase builds the read-side portfolio projection: holdings
// valued at current oracle prices. It never mutates ledger state.
type PortfolioUseCase struct {
	accountRepo AccountRepository
	holdingRepo HoldingRepository
	oracle      PriceOracle
}

// NewPortfolioUseCase creates a new PortfolioUseCase.
func NewPortfolioUseCase(accountRepo AccountRepository, holdingRepo HoldingRepository, oracle PriceOracle) *PortfolioUseCase {
	return &PortfolioUseCase{
		accountRepo: accountRepo,
		holdingRepo: holdingRepo,
		oracle:      oracle,
	}
}

// Position is one valued holding in the portfolio view.
type Position struct {
	Holding       *domain.Holding
	LastPrice     decimal.Decimal
	MarketValue   decimal.Decimal
	UnrealizedPnL decimal.Decimal

	// Priced is false when the oracle had no live price for the symbol;
	// the position is then valued at cost basis.
	Priced bool
}

// PortfolioView is an account's balance plus its valued positions.
type PortfolioView struct {
	Account   *domain.Account
	Positions []Position
	Equity    decimal.Decimal
}

// GetPortfolio values the account's holdings at current prices. A missing
// oracle price degrades that position to cost basis instead of failing the
// whole view.
func (uc *PortfolioUseCase) GetPortfolio(ctx context.Context, accountID string) (*PortfolioView, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	holdings, err := uc.holdingRepo.GetByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	view := &PortfolioView{
		Account:   account,
		Positions: make([]Position, 0, len(holdings)),
		Equity:    account.Balance,
	}

	for _, h := range holdings {
		pos := Position{Holding: h}

		price, err := uc.oracle.GetPrice(ctx, h.Symbol)
		switch {
		case err == nil && price.IsPositive():
			pos.Priced = true
			pos.LastPrice = price
			pos.MarketValue = h.MarketValue(price)
			pos.UnrealizedPnL = pos.MarketValue.Sub(h.CostBasis())
		case errors.Is(err, domain.ErrPriceUnavailable) || err == nil:
			pos.MarketValue = h.CostBasis()
		default:
			return nil, err
		}

		view.Equity = view.Equity.Add(pos.MarketValue)
		view.Positions = append(view.Positions, pos)
	}

	return view, nil
}
