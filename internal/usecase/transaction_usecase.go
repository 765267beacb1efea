package usecase

import (
	"context"

	"github.com/iho/papertrade/internal/domain"
)

// TransactionUseCase exposes the append-only trade history to readers.
type TransactionUseCase struct {
	transactionRepo TransactionRepository
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(transactionRepo TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{transactionRepo: transactionRepo}
}

// ListTransactionsInput represents input for listing trade history.
type ListTransactionsInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListByAccount lists an account's transaction records, newest first.
func (uc *TransactionUseCase) ListByAccount(ctx context.Context, input ListTransactionsInput) ([]*domain.TransactionRecord, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	return uc.transactionRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}
