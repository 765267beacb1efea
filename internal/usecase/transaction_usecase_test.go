package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/usecase"
	"github.com/iho/papertrade/internal/usecase/mocks"
)

func TestTransactionUseCase_ListByAccount(t *testing.T) {
	repo := mocks.NewMockTransactionRepository()

	for _, sym := range []string{"A", "B", "C"} {
		err := repo.Create(context.Background(), nil, &domain.TransactionRecord{
			ID:        "rec-" + sym,
			AccountID: "acc-1",
			Symbol:    sym,
			Side:      domain.SideBuy,
			Quantity:  decimal.NewFromInt(1),
			Price:     decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}

	uc := usecase.NewTransactionUseCase(repo)

	records, err := uc.ListByAccount(context.Background(), usecase.ListTransactionsInput{AccountID: "acc-1"})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, "C", records[0].Symbol)

	// Pagination.
	page, err := uc.ListByAccount(context.Background(), usecase.ListTransactionsInput{
		AccountID: "acc-1",
		Limit:     1,
		Offset:    1,
	})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "B", page[0].Symbol)
}
