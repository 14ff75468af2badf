package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer. Positive
// amounts are inflows, negative amounts outflows.
type Transaction struct {
	ID          int64
	AccountID   int64
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        *time.Time
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a transaction. A nil Date is
// stored as NULL.
type TransactionCreate struct {
	AccountID   int64
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        *time.Time
}

// TransactionUpdate is a partial update; nil fields are left untouched.
// ClearDate sets the date column to NULL and takes precedence over Date.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
	ClearDate   bool
}

// IsEmpty reports whether the update names no fields.
func (u TransactionUpdate) IsEmpty() bool {
	return u.Amount == nil && u.Description == nil && u.Category == nil &&
		u.Date == nil && !u.ClearDate
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Amount:      row.Amount,
		Description: row.Description,
		Category:    row.Category,
		Date:        row.Date,
		CreatedAt:   row.CreatedAt,
	}
}
