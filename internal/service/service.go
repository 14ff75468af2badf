package service

import (
	"errors"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var (
	// ErrNotFound means the operation targeted a nonexistent id.
	ErrNotFound = errors.New("not found")

	// ErrConflict means a unique value (the user email) already exists.
	ErrConflict = errors.New("duplicate value")
)

// Service holds all business logic services.
type Service struct {
	Users        *UserService
	Accounts     *AccountService
	Transactions *TransactionService
}

// NewService creates the full service register over the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Users:        NewUserService(store),
		Accounts:     NewAccountService(store),
		Transactions: NewTransactionService(store),
	}
}

func mapStorageError(err error) error {
	switch {
	case errors.Is(err, sqlconfig.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, sqlconfig.ErrUniqueViolation):
		return ErrConflict
	}
	return err
}
