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

// UpdateUserBody is the request body for a partial user update. Absent
// fields are left untouched; unrecognized fields are ignored.
type UpdateUserBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name  *string `json:"name,omitempty" doc:"New full name"`
	Email *string `json:"email,omitempty" doc:"New email address"`
}

// UpdateUserInput is the Huma input for updating a user.
type UpdateUserInput struct {
	ID   int64 `path:"id" doc:"User ID"`
	Body UpdateUserBody
}

// UpdateUserOutput is the response for updating a user.
type UpdateUserOutput struct {
	Body User
}

// userUpdater is the interface for updating users.
type userUpdater interface {
	UpdateUser(ctx context.Context, id int64, update service.UserUpdate) (*service.User, error)
}

// UpdateUserHandler handles PATCH /users/{id}.
type UpdateUserHandler struct {
	UserService userUpdater
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(svc userUpdater) *UpdateUserHandler {
	return &UpdateUserHandler{UserService: svc}
}

// Register registers the update user endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPatch,
		Path:        "/users/{id}",
		Summary:     "Update a user",
		Description: "Applies a partial update over name and email.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func parseUpdateUserInput(input *UpdateUserInput) (service.UserUpdate, error) {
	update := service.UserUpdate{
		Name:  input.Body.Name,
		Email: input.Body.Email,
	}
	if update.IsEmpty() {
		return service.UserUpdate{}, apierror.New(http.StatusBadRequest, "No fields to update")
	}
	return update, nil
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	update, err := parseUpdateUserInput(input)
	if err != nil {
		return nil, err
	}

	user, err := h.UserService.UpdateUser(ctx, input.ID, update)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, apierror.New(http.StatusNotFound, "User not found")
		}
		if errors.Is(err, service.ErrConflict) {
			return nil, apierror.New(http.StatusConflict, "Email already exists")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not update user")
	}

	if logData != nil {
		logData.AddData("userID", user.ID)
	}

	return &UpdateUserOutput{Body: userFromService(*user)}, nil
}
