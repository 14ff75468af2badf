package sqlconfig

import (
	"context"
	"time"
)

// User represents a user record.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Name  string
	Email string
}

// UserUpdate names the user columns to change. Nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
}

// IUsersTable defines the interface for user storage operations.
//
//go:generate mockery --name IUsersTable --output mock_IUsersTable.go
type IUsersTable interface {
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id int64, update *UserUpdate) (*User, error)
	Delete(ctx context.Context, id int64) (*User, error)
}
