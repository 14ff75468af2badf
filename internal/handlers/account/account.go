package account

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID        int64  `json:"id" doc:"Account ID"`
	UserID    int64  `json:"user_id" doc:"Owning user ID"`
	Name      string `json:"name" doc:"Account name"`
	Type      string `json:"type" doc:"Account type, free-form"`
	Currency  string `json:"currency" doc:"Currency code, defaults to CAD"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

// AccountWithCashflow is an account row with the signed sum of its
// transaction amounts.
type AccountWithCashflow struct {
	Account
	Cashflow float64 `json:"cashflow" doc:"Sum of transaction amounts, 0 when none"`
}

// AccountTransaction is a transaction row as it appears nested inside an
// account details response.
type AccountTransaction struct {
	ID          int64   `json:"id" doc:"Transaction ID"`
	AccountID   int64   `json:"account_id" doc:"Owning account ID"`
	Amount      float64 `json:"amount" doc:"Signed amount, positive=inflow"`
	Description string  `json:"description" doc:"Free-form description"`
	Category    string  `json:"category" doc:"Free-form category"`
	Date        *string `json:"date" doc:"RFC3339 transaction date, null when unset"`
	CreatedAt   string  `json:"created_at" doc:"RFC3339 creation time"`
}

// AccountDetails is an account merged with its transactions, date descending.
type AccountDetails struct {
	Account
	Transactions []AccountTransaction `json:"transactions" doc:"Transactions, date descending"`
}

func accountFromService(a service.Account) Account {
	return Account{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Type:      a.Type,
		Currency:  a.Currency,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func transactionFromService(t service.Transaction) AccountTransaction {
	var date *string
	if t.Date != nil {
		formatted := t.Date.Format(time.RFC3339)
		date = &formatted
	}
	return AccountTransaction{
		ID:          t.ID,
		AccountID:   t.AccountID,
		Amount:      t.Amount.InexactFloat64(),
		Description: t.Description,
		Category:    t.Category,
		Date:        date,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}
