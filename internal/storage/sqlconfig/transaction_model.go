package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. A positive amount is an
// inflow, a negative amount an outflow. Date is nil when none was recorded.
type Transaction struct {
	ID          int64
	AccountID   int64
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        *time.Time
	CreatedAt   time.Time
}

// TransactionCreate is the input for creating a new transaction. A nil Date
// is stored as NULL.
type TransactionCreate struct {
	AccountID   int64
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        *time.Time
}

// TransactionUpdate names the transaction columns to change. Nil fields are
// left untouched. ClearDate writes NULL to the date column and takes
// precedence over Date.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Description *string
	Category    *string
	Date        *time.Time
	ClearDate   bool
}

// ITransactionsTable defines the interface for transaction storage operations.
//
//go:generate mockery --name ITransactionsTable --output mock_ITransactionsTable.go
type ITransactionsTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	ListByAccount(ctx context.Context, accountID int64) ([]*Transaction, error)
	CashflowByAccount(ctx context.Context, accountID int64) (decimal.Decimal, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id int64) (*Transaction, error)
}
