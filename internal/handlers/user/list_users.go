package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListUsersOutput is the response for listing users: a bare array ordered by
// id ascending.
type ListUsersOutput struct {
	Body []User
}

// userLister is the interface for listing users.
type userLister interface {
	ListUsers(ctx context.Context) ([]service.User, error)
}

// ListUsersHandler handles GET /users.
type ListUsersHandler struct {
	UserService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Description: "Returns all users ordered by id ascending.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	logData := logging.GetLogData(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not fetch users")
	}

	if logData != nil {
		logData.AddData("userCount", len(users))
	}

	resp := make([]User, len(users))
	for i, u := range users {
		resp[i] = userFromService(u)
	}

	return &ListUsersOutput{Body: resp}, nil
}
