package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	Income  = "Income"
	Expense = "Expense"
)

// TransactionDB represents an income or expense record owned by an account.
type TransactionDB struct {
	TransactionID string          `json:"transaction_id" db:"transaction_id"` // Opaque identifier
	PublicID      string          `json:"public_id" db:"public_id"`           // Owner
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Type          string          `json:"type" db:"type"` // Income or Expense
	Category      string          `json:"category" db:"category"`
	Reference     string          `json:"reference" db:"reference"`
	Description   string          `json:"description" db:"description"`
	Date          time.Time       `json:"date" db:"date"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// TransactionFilter narrows a transaction listing. Nil bounds are open.
type TransactionFilter struct {
	After *time.Time // exclusive lower bound
	From  *time.Time // inclusive lower bound
	To    *time.Time // inclusive upper bound
	Type  string     // empty means any
}

// TransactionEvent is published for every transaction change.
type TransactionEvent struct {
	Event         string          `json:"event"` // created, updated or deleted
	TransactionID string          `json:"transaction_id"`
	PublicID      string          `json:"public_id"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Timestamp     int64           `json:"timestamp"`
}
