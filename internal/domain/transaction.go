package domain

import "time"

// Transaction types. The stored amount's sign is derived from the type at
// creation: credit keeps the magnitude, debit negates it.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

type Transaction struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Amount    int64     `db:"amount" json:"amount"`
	SessionID string    `db:"session_id" json:"session_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
