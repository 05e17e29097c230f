package repository

import (
	"context"
	"errors"

	"ledger_api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO transactions (id, title, amount, session_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		tx.ID, tx.Title, tx.Amount, tx.SessionID,
	).Scan(&tx.CreatedAt)
}

// ListBySession returns all transactions of a session in storage order
func (r *TransactionRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, amount, session_id, created_at
		 FROM transactions
		 WHERE session_id = $1`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRows(rows)
}

// GetByID returns the transaction matching both id and session, or nil when
// no such row exists. A row owned by another session is never returned.
func (r *TransactionRepository) GetByID(ctx context.Context, sessionID, id string) (*domain.Transaction, error) {
	var tx domain.Transaction
	err := r.db.QueryRow(ctx,
		`SELECT id, title, amount, session_id, created_at
		 FROM transactions
		 WHERE session_id = $1 AND id = $2`,
		sessionID, id,
	).Scan(&tx.ID, &tx.Title, &tx.Amount, &tx.SessionID, &tx.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// SumAmounts returns the signed sum of a session's amounts. SUM over an
// empty set is NULL, surfaced as a nil pointer.
func (r *TransactionRepository) SumAmounts(ctx context.Context, sessionID string) (*int64, error) {
	var sum *int64
	err := r.db.QueryRow(ctx,
		`SELECT SUM(amount) FROM transactions WHERE session_id = $1`,
		sessionID,
	).Scan(&sum)
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// Helper to scan rows into a Transaction slice
func scanRows(rows pgx.Rows) ([]*domain.Transaction, error) {
	var result []*domain.Transaction

	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(&tx.ID, &tx.Title, &tx.Amount, &tx.SessionID, &tx.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &tx)
	}

	return result, rows.Err()
}
