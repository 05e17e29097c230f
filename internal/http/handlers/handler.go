package handlers

import (
	"context"

	"ledger_api/internal/domain"
	"ledger_api/internal/http/middleware"
	"ledger_api/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TransactionStore is the storage surface the handlers depend on. The
// pgx-backed repository implements it; tests swap in an in-memory fake.
type TransactionStore interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Transaction, error)
	GetByID(ctx context.Context, sessionID, id string) (*domain.Transaction, error)
	SumAmounts(ctx context.Context, sessionID string) (*int64, error)
}

type Handler struct {
	Transactions TransactionStore
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		Transactions: repository.NewTransactionRepository(db),
	}
}

// sessionID extracts the session token stored by the guard middleware.
func sessionID(c *gin.Context) string {
	return c.GetString(middleware.SessionKey)
}
