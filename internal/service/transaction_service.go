package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// CreateTransaction creates a new transaction and returns the stored record.
func (s *TransactionService) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	row, err := s.storage.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		AccountID:   create.AccountID,
		Amount:      create.Amount,
		Description: create.Description,
		Category:    create.Category,
		Date:        create.Date,
	})
	if err != nil {
		return nil, mapStorageError(err)
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// ListAccountTransactions returns an account's transactions ordered by date
// descending.
func (s *TransactionService) ListAccountTransactions(ctx context.Context, accountID int64) ([]Transaction, error) {
	rows, err := s.storage.Transactions.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, mapStorageError(err)
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = transactionFromStorage(row)
	}
	return transactions, nil
}

// UpdateTransaction applies a partial update and returns the updated record.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, update TransactionUpdate) (*Transaction, error) {
	row, err := s.storage.Transactions.Update(ctx, id, &sqlconfig.TransactionUpdate{
		Amount:      update.Amount,
		Description: update.Description,
		Category:    update.Category,
		Date:        update.Date,
		ClearDate:   update.ClearDate,
	})
	if err != nil {
		return nil, mapStorageError(err)
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// DeleteTransaction removes a transaction and returns the deleted record.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.storage.Transactions.Delete(ctx, id)
	if err != nil {
		return nil, mapStorageError(err)
	}

	transaction := transactionFromStorage(row)
	return &transaction, nil
}
