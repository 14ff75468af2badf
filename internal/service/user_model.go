package service

import (
	"time"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// User represents a user in the service layer.
type User struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// UserCreate is the input for creating a user.
type UserCreate struct {
	Name  string
	Email string
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Name  *string
	Email *string
}

// IsEmpty reports whether the update names no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil
}

func userFromStorage(row *sqlconfig.User) User {
	return User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
	}
}
