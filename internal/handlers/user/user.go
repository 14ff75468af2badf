package user

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

// User is the API response model for a user.
type User struct {
	ID        int64  `json:"id" doc:"User ID"`
	Name      string `json:"name" doc:"Full name"`
	Email     string `json:"email" doc:"Email address"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
}

func userFromService(u service.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
