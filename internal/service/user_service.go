package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UserService handles user business logic.
type UserService struct {
	storage *storage.Storage
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage) *UserService {
	return &UserService{storage: store}
}

// CreateUser creates a new user and returns the stored record. A duplicate
// email surfaces as ErrConflict.
func (s *UserService) CreateUser(ctx context.Context, create UserCreate) (*User, error) {
	row, err := s.storage.Users.Insert(ctx, &sqlconfig.UserCreate{
		Name:  create.Name,
		Email: create.Email,
	})
	if err != nil {
		return nil, mapStorageError(err)
	}

	user := userFromStorage(row)
	return &user, nil
}

// ListUsers returns all users ordered by id ascending.
func (s *UserService) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, mapStorageError(err)
	}

	users := make([]User, len(rows))
	for i, row := range rows {
		users[i] = userFromStorage(row)
	}
	return users, nil
}

// UpdateUser applies a partial update and returns the updated record.
func (s *UserService) UpdateUser(ctx context.Context, id int64, update UserUpdate) (*User, error) {
	row, err := s.storage.Users.Update(ctx, id, &sqlconfig.UserUpdate{
		Name:  update.Name,
		Email: update.Email,
	})
	if err != nil {
		return nil, mapStorageError(err)
	}

	user := userFromStorage(row)
	return &user, nil
}

// DeleteUser removes a user and returns the deleted record.
func (s *UserService) DeleteUser(ctx context.Context, id int64) (*User, error) {
	row, err := s.storage.Users.Delete(ctx, id)
	if err != nil {
		return nil, mapStorageError(err)
	}

	user := userFromStorage(row)
	return &user, nil
}
