package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/papertrade/internal/domain"
	"github.com/iho/papertrade/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository over the
// append-only trade log. Records are only ever inserted.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create appends a trade record within a transaction.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.TransactionRecord) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO transactions (id, account_id, symbol, side, quantity, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID,
		record.AccountID,
		record.Symbol,
		string(record.Side),
		decimalToNumeric(record.Quantity),
		decimalToNumeric(record.Price),
		timeToPgTimestamptz(record.CreatedAt),
	)

	return err
}

// ListByAccount returns an account's trade records, newest first.
func (r *TransactionRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.TransactionRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, account_id, symbol, side, quantity, price, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, accountID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.TransactionRecord
	for rows.Next() {
		var (
			record    domain.TransactionRecord
			side      string
			quantity  pgtype.Numeric
			price     pgtype.Numeric
			createdAt pgtype.Timestamptz
		)

		err := rows.Scan(
			&record.ID,
			&record.AccountID,
			&record.Symbol,
			&side,
			&quantity,
			&price,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		record.Side = domain.Side(side)
		record.Quantity = numericToDecimal(quantity)
		record.Price = numericToDecimal(price)
		record.CreatedAt = createdAt.Time

		records = append(records, &record)
	}

	return records, rows.Err()
}
