package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

func newTransactionTestService() (*TransactionService, *mockTransactionsTable) {
	mockTable := new(mockTransactionsTable)
	store := &storage.Storage{Transactions: mockTable}
	return NewTransactionService(store), mockTable
}

func storageTransaction(id, accountID int64, amount string, date *time.Time) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:          id,
		AccountID:   accountID,
		Amount:      decimal.RequireFromString(amount),
		Description: "Coffee",
		Category:    "food",
		Date:        date,
		CreatedAt:   time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCreateTransaction_Success(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	txDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mockTable.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.AccountID == 1 &&
			c.Amount.Equal(decimal.RequireFromString("-12.50")) &&
			c.Description == "Coffee" &&
			c.Category == "food" &&
			c.Date != nil && c.Date.Equal(txDate)
	})).Return(storageTransaction(10, 1, "-12.50", &txDate), nil)

	transaction, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		AccountID:   1,
		Amount:      decimal.RequireFromString("-12.50"),
		Description: "Coffee",
		Category:    "food",
		Date:        &txDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), transaction.ID)
	mockTable.AssertExpectations(t)
}

func TestCreateTransaction_NilDate(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	mockTable.On("Insert", mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.Date == nil
	})).Return(storageTransaction(11, 1, "40", nil), nil)

	transaction, err := svc.CreateTransaction(context.Background(), TransactionCreate{
		AccountID: 1,
		Amount:    decimal.RequireFromString("40"),
	})

	assert.NoError(t, err)
	assert.Nil(t, transaction.Date)
}

func TestListAccountTransactions_Success(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	newer := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)
	older := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	mockTable.On("ListByAccount", mock.Anything, int64(1)).Return([]*sqlconfig.Transaction{
		storageTransaction(2, 1, "100", &newer),
		storageTransaction(1, 1, "-30", &older),
	}, nil)

	transactions, err := svc.ListAccountTransactions(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, int64(2), transactions[0].ID, "store order is preserved")
}

func TestListAccountTransactions_StorageError(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	mockTable.On("ListByAccount", mock.Anything, int64(1)).
		Return(nil, errors.New("database unavailable"))

	transactions, err := svc.ListAccountTransactions(context.Background(), 1)

	assert.Error(t, err)
	assert.Nil(t, transactions)
}

func TestUpdateTransaction_Success(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	amount := decimal.RequireFromString("55")
	mockTable.On("Update", mock.Anything, int64(10), mock.MatchedBy(func(u *sqlconfig.TransactionUpdate) bool {
		return u.Amount != nil && u.Amount.Equal(amount) && u.Description == nil
	})).Return(storageTransaction(10, 1, "55", nil), nil)

	transaction, err := svc.UpdateTransaction(context.Background(), 10, TransactionUpdate{Amount: &amount})

	assert.NoError(t, err)
	assert.True(t, transaction.Amount.Equal(amount))
}

func TestUpdateTransaction_ClearDate(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	mockTable.On("Update", mock.Anything, int64(10), mock.MatchedBy(func(u *sqlconfig.TransactionUpdate) bool {
		return u.ClearDate && u.Date == nil
	})).Return(storageTransaction(10, 1, "55", nil), nil)

	transaction, err := svc.UpdateTransaction(context.Background(), 10, TransactionUpdate{ClearDate: true})

	assert.NoError(t, err)
	assert.Nil(t, transaction.Date)
	mockTable.AssertExpectations(t)
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	amount := decimal.RequireFromString("55")
	mockTable.On("Update", mock.Anything, int64(42), mock.Anything).
		Return(nil, sqlconfig.ErrNotFound)

	transaction, err := svc.UpdateTransaction(context.Background(), 42, TransactionUpdate{Amount: &amount})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, transaction)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	svc, mockTable := newTransactionTestService()

	mockTable.On("Delete", mock.Anything, int64(42)).
		Return(nil, sqlconfig.ErrNotFound)

	transaction, err := svc.DeleteTransaction(context.Background(), 42)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, transaction)
}
