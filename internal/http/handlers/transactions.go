package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ledger_api/internal/domain"
	"ledger_api/internal/logger"
	"ledger_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Amount is a pointer so that an explicit zero passes the required check.
// The schema asks only for a number: a negative magnitude is stored with
// its sign inverted by type, same as any other value.
type createTransactionRequest struct {
	Title  string `json:"title" binding:"required"`
	Amount *int64 `json:"amount" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=credit debit"`
}

// CreateTransaction records a ledger entry. The caller's session cookie is
// reused when present; otherwise a fresh token is minted and attached to
// the response. Not guarded: this is where sessions are born.
func (h *Handler) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	token, err := c.Cookie(service.SessionCookieName)
	if err != nil || token == "" {
		token = service.NewSessionToken()
		c.SetCookie(service.SessionCookieName, token, int(service.SessionTTL.Seconds()), "/", "", false, true)
	}

	amount := *req.Amount
	if req.Type == domain.TypeDebit {
		amount = -amount
	}

	tx := &domain.Transaction{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Amount:    amount,
		SessionID: token,
	}

	if err := h.Transactions.Create(c.Request.Context(), tx); err != nil {
		logger.Error("create transaction", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Status(http.StatusCreated)
}

// ListTransactions returns every transaction of the caller's session.
func (h *Handler) ListTransactions(c *gin.Context) {
	transactions, err := h.Transactions.ListBySession(c.Request.Context(), sessionID(c))
	if err != nil {
		logger.Error("list transactions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	if transactions == nil {
		transactions = []*domain.Transaction{}
	}
	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}

// GetTransaction looks up a single transaction by id within the caller's
// session. A miss is a null result, not a 404.
func (h *Handler) GetTransaction(c *gin.Context) {
	tx, err := h.Transactions.GetByID(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		logger.Error("get transaction", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// GetSummary returns the signed sum of the session's amounts; null when the
// session has no transactions.
func (h *Handler) GetSummary(c *gin.Context) {
	amount, err := h.Transactions.SumAmounts(c.Request.Context(), sessionID(c))
	if err != nil {
		logger.Error("summary", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": gin.H{"amount": amount}})
}

// validationError maps binding failures to a 400 with per-field detail.
// Both constraint violations and wrong-typed fields name the offending field.
func validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		fields := map[string]string{typeErr.Field: "expected " + typeErr.Type.String()}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
