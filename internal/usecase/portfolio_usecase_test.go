package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/usecase"
	"github.com/iho/papertrade/internal/usecase/mocks"
)

func TestPortfolioUseCase_GetPortfolio(t *testing.T) {
	ctrl := gomock.NewController(t)

	accountRepo := mocks.NewMockAccountRepository()
	holdingRepo := mocks.NewMockHoldingRepository()
	oracle := mocks.NewMockGenPriceOracle(ctrl)

	accountRepo.Seed(&domain.Account{ID: "acc-1", Owner: "trader", Balance: decimal.NewFromInt(1000)})
	holdingRepo.Seed(&domain.Holding{
		AccountID: "acc-1", Symbol: "AAPL",
		Quantity: decimal.NewFromInt(10), AvgPrice: decimal.NewFromInt(100),
	})
	holdingRepo.Seed(&domain.Holding{
		AccountID: "acc-1", Symbol: "TCS",
		Quantity: decimal.NewFromInt(5), AvgPrice: decimal.NewFromInt(40),
	})

	oracle.EXPECT().GetPrice(gomock.Any(), "AAPL").Return(decimal.NewFromInt(120), nil)
	oracle.EXPECT().GetPrice(gomock.Any(), "TCS").Return(decimal.Zero, domain.ErrPriceUnavailable)

	uc := usecase.NewPortfolioUseCase(accountRepo, holdingRepo, oracle)

	view, err := uc.GetPortfolio(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, view.Positions, 2)

	aapl := view.Positions[0]
	assert.True(t, aapl.Priced)
	assert.True(t, aapl.MarketValue.Equal(decimal.NewFromInt(1200)))
	assert.True(t, aapl.UnrealizedPnL.Equal(decimal.NewFromInt(200)))

	// Oracle miss degrades to cost basis instead of failing the view.
	tcs := view.Positions[1]
	assert.False(t, tcs.Priced)
	assert.True(t, tcs.MarketValue.Equal(decimal.NewFromInt(200)))

	// Equity = cash + market values = 1000 + 1200 + 200.
	assert.True(t, view.Equity.Equal(decimal.NewFromInt(2400)), "equity: %s", view.Equity)
}

func TestPortfolioUseCase_EmptyPortfolio(t *testing.T) {
	ctrl := gomock.NewController(t)

	accountRepo := mocks.NewMockAccountRepository()
	holdingRepo := mocks.NewMockHoldingRepository()
	oracle := mocks.NewMockGenPriceOracle(ctrl)

	accountRepo.Seed(&domain.Account{ID: "acc-1", Balance: decimal.NewFromInt(500)})

	uc := usecase.NewPortfolioUseCase(accountRepo, holdingRepo, oracle)

	view, err := uc.GetPortfolio(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Empty(t, view.Positions)
	assert.True(t, view.Equity.Equal(decimal.NewFromInt(500)))
}

func TestPortfolioUseCase_AccountNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	uc := usecase.NewPortfolioUseCase(
		mocks.NewMockAccountRepository(),
		mocks.NewMockHoldingRepository(),
		mocks.NewMockGenPriceOracle(ctrl),
	)

	_, err := uc.GetPortfolio(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}
