package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

const defaultCurrency = "CAD"

// CreateAccountBody is the request body for creating an account.
// Unrecognized fields are ignored.
type CreateAccountBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	UserID   int64  `json:"user_id,omitempty" doc:"Owning user ID"`
	Name     string `json:"name,omitempty" doc:"Account name"`
	Type     string `json:"type,omitempty" doc:"Account type, free-form"`
	Currency string `json:"currency,omitempty" doc:"Currency code, defaults to CAD"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the response for creating an account.
type CreateAccountOutput struct {
	Status int
	Body   Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, create service.AccountCreate) (*service.Account, error)
}

// CreateAccountHandler handles POST /accounts.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/accounts",
		Summary:     "Create an account",
		Description: "Creates a new account for an existing user. A bad user_id fails at the store's foreign-key constraint; there is no pre-check.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseCreateAccountInput(input *CreateAccountInput) (service.AccountCreate, error) {
	if input.Body.UserID == 0 || input.Body.Name == "" || input.Body.Type == "" {
		return service.AccountCreate{}, apierror.New(http.StatusBadRequest, "user_id, name, and type are required")
	}

	currency := input.Body.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return service.AccountCreate{
		UserID:   input.Body.UserID,
		Name:     input.Body.Name,
		Type:     input.Body.Type,
		Currency: currency,
	}, nil
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateAccountInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createAccountMs")
	}
	account, err := h.AccountService.CreateAccount(ctx, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not create account")
	}

	if logData != nil {
		logData.AddData("accountID", account.ID)
	}

	return &CreateAccountOutput{
		Status: http.StatusCreated,
		Body:   accountFromService(*account),
	}, nil
}
