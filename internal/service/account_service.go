package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// AccountService handles account business logic.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// CreateAccount creates a new account and returns the stored record. There
// is no pre-check that the user exists; a bad user_id surfaces as a
// foreign-key store error.
func (s *AccountService) CreateAccount(ctx context.Context, create AccountCreate) (*Account, error) {
	row, err := s.storage.Accounts.Insert(ctx, &sqlconfig.AccountCreate{
		UserID:   create.UserID,
		Name:     create.Name,
		Type:     create.Type,
		Currency: create.Currency,
	})
	if err != nil {
		return nil, mapStorageError(err)
	}

	account := accountFromStorage(row)
	return &account, nil
}

// ListAccounts returns all accounts ordered by id ascending.
func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx)
	if err != nil {
		return nil, mapStorageError(err)
	}

	accounts := make([]Account, len(rows))
	for i, row := range rows {
		accounts[i] = accountFromStorage(row)
	}
	return accounts, nil
}

// ListUserAccounts returns a user's accounts, newest first, each carrying
// its cashflow sum.
func (s *AccountService) ListUserAccounts(ctx context.Context, userID int64) ([]AccountWithCashflow, error) {
	rows, err := s.storage.Accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapStorageError(err)
	}

	accounts := make([]AccountWithCashflow, len(rows))
	for i, row := range rows {
		accounts[i] = AccountWithCashflow{
			Account:  accountFromStorage(&row.Account),
			Cashflow: row.Cashflow,
		}
	}
	return accounts, nil
}

// GetAccountDetails returns an account merged with its transactions. The
// transaction query is never issued when the account does not exist.
func (s *AccountService) GetAccountDetails(ctx context.Context, id int64) (*AccountDetails, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, mapStorageError(err)
	}

	transactionRows, err := s.storage.Transactions.ListByAccount(ctx, id)
	if err != nil {
		return nil, mapStorageError(err)
	}

	details := AccountDetails{
		Account:      accountFromStorage(row),
		Transactions: make([]Transaction, len(transactionRows)),
	}
	for i, transactionRow := range transactionRows {
		details.Transactions[i] = transactionFromStorage(transactionRow)
	}
	return &details, nil
}

// Cashflow returns the signed sum of an account's transaction amounts,
// 0 when it has none.
func (s *AccountService) Cashflow(ctx context.Context, id int64) (decimal.Decimal, error) {
	cashflow, err := s.storage.Transactions.CashflowByAccount(ctx, id)
	if err != nil {
		return decimal.Zero, mapStorageError(err)
	}
	return cashflow, nil
}

// UpdateAccount applies a partial update and returns the updated record.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, update AccountUpdate) (*Account, error) {
	row, err := s.storage.Accounts.Update(ctx, id, &sqlconfig.AccountUpdate{
		Name:     update.Name,
		Type:     update.Type,
		Currency: update.Currency,
	})
	if err != nil {
		return nil, mapStorageError(err)
	}

	account := accountFromStorage(row)
	return &account, nil
}

// DeleteAccount removes an account and returns the deleted record.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.storage.Accounts.Delete(ctx, id)
	if err != nil {
		return nil, mapStorageError(err)
	}

	account := accountFromStorage(row)
	return &account, nil
}
