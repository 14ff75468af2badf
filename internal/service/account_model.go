package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Account represents an account in the service layer.
type Account struct {
	ID        int64
	UserID    int64
	Name      string
	Type      string
	Currency  string
	CreatedAt time.Time
}

// AccountWithCashflow is an account together with the signed sum of its
// transaction amounts.
type AccountWithCashflow struct {
	Account
	Cashflow decimal.Decimal
}

// AccountDetails is an account merged with its transactions, date descending.
type AccountDetails struct {
	Account
	Transactions []Transaction
}

// AccountCreate is the input for creating an account.
type AccountCreate struct {
	UserID   int64
	Name     string
	Type     string
	Currency string
}

// AccountUpdate is a partial update; nil fields are left untouched.
type AccountUpdate struct {
	Name     *string
	Type     *string
	Currency *string
}

// IsEmpty reports whether the update names no fields.
func (u AccountUpdate) IsEmpty() bool {
	return u.Name == nil && u.Type == nil && u.Currency == nil
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Type:      row.Type,
		Currency:  row.Currency,
		CreatedAt: row.CreatedAt,
	}
}
