package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/usecase"
)

// HoldingRepository implements usecase.HoldingRepository.
type HoldingRepository struct {
	pool *pgxpool.Pool
}

// NewHoldingRepository creates a new HoldingRepository.
func NewHoldingRepository(pool *pgxpool.Pool) *HoldingRepository {
	return &HoldingRepository{pool: pool}
}

const holdingColumns = `account_id, symbol, quantity, avg_price, created_at, updated_at`

// GetBySymbolForUpdate locks and returns the holding for (accountID, symbol).
// Absence is a normal case for a buy, so it returns (nil, nil) rather than
// an error when no position exists.
func (r *HoldingRepository) GetBySymbolForUpdate(ctx context.Context, tx usecase.Transaction, accountID, symbol string) (*domain.Holding, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `
		SELECT `+holdingColumns+`
		FROM holdings
		WHERE account_id = $1 AND symbol = $2
		FOR UPDATE`, accountID, symbol)

	holding, err := scanHolding(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return holding, nil
}

// GetByAccount returns all holdings of an account ordered by symbol.
func (r *HoldingRepository) GetByAccount(ctx context.Context, accountID string) ([]*domain.Holding, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+holdingColumns+`
		FROM holdings
		WHERE account_id = $1
		ORDER BY symbol`, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []*domain.Holding
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	return holdings, rows.Err()
}

// Upsert inserts or replaces the position for (account_id, symbol).
func (r *HoldingRepository) Upsert(ctx context.Context, tx usecase.Transaction, holding *domain.Holding) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO holdings (account_id, symbol, quantity, avg_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id, symbol)
		DO UPDATE SET quantity = EXCLUDED.quantity, avg_price = EXCLUDED.avg_price, updated_at = EXCLUDED.updated_at`,
		holding.AccountID,
		holding.Symbol,
		decimalToNumeric(holding.Quantity),
		decimalToNumeric(holding.AvgPrice),
		timeToPgTimestamptz(holding.CreatedAt),
		timeToPgTimestamptz(holding.UpdatedAt),
	)

	return err
}

// Delete removes a fully-closed position.
func (r *HoldingRepository) Delete(ctx context.Context, tx usecase.Transaction, accountID, symbol string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		DELETE FROM holdings
		WHERE account_id = $1 AND symbol = $2`, accountID, symbol)

	return err
}

func scanHolding(row pgx.Row) (*domain.Holding, error) {
	var (
		holding   domain.Holding
		quantity  pgtype.Numeric
		avgPrice  pgtype.Numeric
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&holding.AccountID,
		&holding.Symbol,
		&quantity,
		&avgPrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	holding.Quantity = numericToDecimal(quantity)
	holding.AvgPrice = numericToDecimal(avgPrice)
	holding.CreatedAt = createdAt.Time
	holding.UpdatedAt = updatedAt.Time

	return &holding, nil
}
