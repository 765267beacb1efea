package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/papertrade/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, tx Transaction, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// HoldingRepository defines data access for holdings.
type HoldingRepository interface {
	// GetBySymbolForUpdate locks and returns the holding for (accountID,
	// symbol). It returns (nil, nil) when the account holds no position in
	// the symbol; absence is a normal case for a buy.
	GetBySymbolForUpdate(ctx context.Context, tx Transaction, accountID, symbol string) (*domain.Holding, error)
	GetByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error)
	Upsert(ctx context.Context, tx Transaction, holding *domain.Holding) error
	Delete(ctx context.Context, tx Transaction, accountID, symbol string) error
}

// TransactionRepository defines data access for the append-only trade log.
type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.TransactionRecord) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.TransactionRecord, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// PriceOracle supplies the current tradable price for a symbol.
// Implementations return domain.ErrPriceUnavailable when no live price
// exists yet; they never return zero or negative prices.
type PriceOracle interface {
	GetPrice(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// Retrier re-runs an operation on transient persistence conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
