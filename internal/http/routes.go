package http

import (
	"ledger_api/internal/http/handlers"
	"ledger_api/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, version string) {
	h := handlers.NewHandler(db)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no session required)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Ledger API. Create mints the session; everything else requires one.
	tx := r.Group("/transactions")
	tx.Use(middleware.Metrics())
	{
		tx.POST("", h.CreateTransaction)
		tx.GET("", middleware.Session(), h.ListTransactions)
		tx.GET("/summary", middleware.Session(), h.GetSummary)
		tx.GET("/:id", middleware.Session(), h.GetTransaction)
	}
}
