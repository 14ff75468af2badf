package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Account represents an account record.
type Account struct {
	ID        int64
	UserID    int64
	Name      string
	Type      string
	Currency  string
	CreatedAt time.Time
}

// AccountWithCashflow is an account row joined with the sum of its
// transaction amounts.
type AccountWithCashflow struct {
	Account
	Cashflow decimal.Decimal
}

// AccountCreate is the input for creating a new account. The referenced user
// is not checked here; a missing user surfaces as a foreign-key error from
// the store.
type AccountCreate struct {
	UserID   int64
	Name     string
	Type     string
	Currency string
}

// AccountUpdate names the account columns to change. Nil fields are left
// untouched.
type AccountUpdate struct {
	Name     *string
	Type     *string
	Currency *string
}

// IAccountsTable defines the interface for account storage operations.
//
//go:generate mockery --name IAccountsTable --output mock_IAccountsTable.go
type IAccountsTable interface {
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	ListByUser(ctx context.Context, userID int64) ([]*AccountWithCashflow, error)
	FindByID(ctx context.Context, id int64) (*Account, error)
	Update(ctx context.Context, id int64, update *AccountUpdate) (*Account, error)
	Delete(ctx context.Context, id int64) (*Account, error)
}
