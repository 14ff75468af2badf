package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	ID int64 `path:"id" doc:"User ID"`
}

// DeleteUserResponse is the response body for deleting a user.
type DeleteUserResponse struct {
	Success bool `json:"success" doc:"Always true on success"`
	Deleted User `json:"deleted" doc:"The deleted user record"`
}

// DeleteUserOutput is the response for deleting a user.
type DeleteUserOutput struct {
	Body DeleteUserResponse
}

// userDeleter is the interface for deleting users.
type userDeleter interface {
	DeleteUser(ctx context.Context, id int64) (*service.User, error)
}

// DeleteUserHandler handles DELETE /users/{id}.
type DeleteUserHandler struct {
	UserService userDeleter
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(svc userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{UserService: svc}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/users/{id}",
		Summary:     "Delete a user",
		Description: "Deletes a user and returns the removed record.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	logData := logging.GetLogData(ctx)

	user, err := h.UserService.DeleteUser(ctx, input.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, apierror.New(http.StatusNotFound, "User not found")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not delete user")
	}

	if logData != nil {
		logData.AddData("userID", user.ID)
	}

	return &DeleteUserOutput{Body: DeleteUserResponse{
		Success: true,
		Deleted: userFromService(*user),
	}}, nil
}
