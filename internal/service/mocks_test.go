package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

type mockUsersTable struct {
	mock.Mock
}

func (m *mockUsersTable) Insert(ctx context.Context, create *sqlconfig.UserCreate) (*sqlconfig.User, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) List(ctx context.Context) ([]*sqlconfig.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) Update(ctx context.Context, id int64, update *sqlconfig.UserUpdate) (*sqlconfig.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUsersTable) Delete(ctx context.Context, id int64) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

type mockAccountsTable struct {
	mock.Mock
}

func (m *mockAccountsTable) Insert(ctx context.Context, create *sqlconfig.AccountCreate) (*sqlconfig.Account, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Account), args.Error(1)
}

func (m *mockAccountsTable) List(ctx context.Context) ([]*sqlconfig.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Account), args.Error(1)
}

func (m *mockAccountsTable) ListByUser(ctx context.Context, userID int64) ([]*sqlconfig.AccountWithCashflow, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.AccountWithCashflow), args.Error(1)
}

func (m *mockAccountsTable) FindByID(ctx context.Context, id int64) (*sqlconfig.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Account), args.Error(1)
}

func (m *mockAccountsTable) Update(ctx context.Context, id int64, update *sqlconfig.AccountUpdate) (*sqlconfig.Account, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Account), args.Error(1)
}

func (m *mockAccountsTable) Delete(ctx context.Context, id int64) (*sqlconfig.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Account), args.Error(1)
}

type mockTransactionsTable struct {
	mock.Mock
}

func (m *mockTransactionsTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionsTable) ListByAccount(ctx context.Context, accountID int64) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionsTable) CashflowByAccount(ctx context.Context, accountID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockTransactionsTable) Update(ctx context.Context, id int64, update *sqlconfig.TransactionUpdate) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionsTable) Delete(ctx context.Context, id int64) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}
