package account

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// UpdateAccountBody is the request body for a partial account update.
// Absent fields are left untouched; unrecognized fields are ignored.
type UpdateAccountBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Name     *string `json:"name,omitempty" doc:"New account name"`
	Type     *string `json:"type,omitempty" doc:"New account type"`
	Currency *string `json:"currency,omitempty" doc:"New currency code"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID   int64 `path:"id" doc:"Account ID"`
	Body UpdateAccountBody
}

// UpdateAccountOutput is the response for updating an account.
type UpdateAccountOutput struct {
	Body Account
}

// accountUpdater is the interface for updating accounts.
type accountUpdater interface {
	UpdateAccount(ctx context.Context, id int64, update service.AccountUpdate) (*service.Account, error)
}

// UpdateAccountHandler handles PATCH /accounts/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/accounts/{id}",
		Summary:     "Update an account",
		Description: "Applies a partial update over name, type, and currency.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func parseUpdateAccountInput(input *UpdateAccountInput) (service.AccountUpdate, error) {
	update := service.AccountUpdate{
		Name:     input.Body.Name,
		Type:     input.Body.Type,
		Currency: input.Body.Currency,
	}
	if update.IsEmpty() {
		return service.AccountUpdate{}, apierror.New(http.StatusBadRequest, "No fields to update")
	}
	return update, nil
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	update, err := parseUpdateAccountInput(input)
	if err != nil {
		return nil, err
	}

	account, err := h.AccountService.UpdateAccount(ctx, input.ID, update)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, apierror.New(http.StatusNotFound, "Account not found")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not update account")
	}

	if logData != nil {
		logData.AddData("accountID", account.ID)
	}

	return &UpdateAccountOutput{Body: accountFromService(*account)}, nil
}
