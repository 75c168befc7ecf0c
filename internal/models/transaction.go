package models

import (
	"strings"

	"github.com/coincraft/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType determines whether a transaction adds to or subtracts from
// the balance.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense entry in the ledger.
//
// Transactions are immutable once created, they can only be deleted.
type Transaction struct {
	DefaultModel
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        types.Date      `json:"date"`
}

// Validate checks the transaction for invalid values.
func (t *Transaction) Validate() error {
	t.Category = strings.TrimSpace(t.Category)
	t.Description = strings.TrimSpace(t.Description)

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Category == "" {
		return ErrTransactionCategoryRequired
	}

	return nil
}
