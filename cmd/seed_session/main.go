package main

import (
	"context"

	"ledger_api/internal/config"
	"ledger_api/internal/db"
	"ledger_api/internal/domain"
	"ledger_api/internal/logger"
	"ledger_api/internal/repository"
	"ledger_api/internal/service"

	"github.com/google/uuid"
)

// Dev tool: mints a fresh session, inserts a few transactions into it and
// prints the token to use as the sessionId cookie.
func main() {
	cfg := config.Load()

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	repo := repository.NewTransactionRepository(pool)
	ctx := context.Background()

	token := service.NewSessionToken()

	seed := []*domain.Transaction{
		{ID: uuid.NewString(), Title: "Salary", Amount: 5000, SessionID: token},
		{ID: uuid.NewString(), Title: "Groceries", Amount: -3000, SessionID: token},
	}

	for _, tx := range seed {
		if err := repo.Create(ctx, tx); err != nil {
			logger.Fatal("seed transaction failed", "error", err)
		}
		logger.Info("seeded transaction", "id", tx.ID, "title", tx.Title, "amount", tx.Amount)
	}

	sum, err := repo.SumAmounts(ctx, token)
	if err != nil {
		logger.Fatal("summary failed", "error", err)
	}

	logger.Info("session ready", "token", token, "balance", *sum)
}
