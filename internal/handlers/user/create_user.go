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

// CreateUserBody is the request body for creating a user. Unrecognized
// fields are ignored.
type CreateUserBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name  string `json:"name,omitempty" doc:"Full name"`
	Email string `json:"email,omitempty" doc:"Email address, globally unique"`
}

// CreateUserInput is the Huma input for creating a user.
type CreateUserInput struct {
	Body CreateUserBody
}

// CreateUserOutput is the response for creating a user.
type CreateUserOutput struct {
	Status int
	Body   User
}

// userCreator is the interface for creating users.
type userCreator interface {
	CreateUser(ctx context.Context, create service.UserCreate) (*service.User, error)
}

// CreateUserHandler handles POST /users.
type CreateUserHandler struct {
	UserService userCreator
}

// NewCreateUserHandler creates a new CreateUserHandler.
func NewCreateUserHandler(svc userCreator) *CreateUserHandler {
	return &CreateUserHandler{UserService: svc}
}

// Register registers the create user endpoint with the Huma API.
func (h *CreateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-user",
		Method:      http.MethodPost,
		Path:        "/users",
		Summary:     "Create a user",
		Description: "Creates a new user with the given name and email.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func parseCreateUserInput(input *CreateUserInput) (service.UserCreate, error) {
	if input.Body.Name == "" || input.Body.Email == "" {
		return service.UserCreate{}, apierror.New(http.StatusBadRequest, "Name and email are required")
	}

	return service.UserCreate{
		Name:  input.Body.Name,
		Email: input.Body.Email,
	}, nil
}

func (h *CreateUserHandler) handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateUserInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createUserMs")
	}
	user, err := h.UserService.CreateUser(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrConflict) {
			return nil, apierror.New(http.StatusConflict, "Email already exists")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not create user")
	}

	if logData != nil {
		logData.AddData("userID", user.ID)
	}

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body:   userFromService(*user),
	}, nil
}
