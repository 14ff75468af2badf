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

// DeleteAccountInput is the Huma input for deleting an account.
type DeleteAccountInput struct {
	ID int64 `path:"id" doc:"Account ID"`
}

// DeleteAccountResponse is the response body for deleting an account.
type DeleteAccountResponse struct {
	Success bool    `json:"success" doc:"Always true on success"`
	Deleted Account `json:"deleted" doc:"The deleted account record"`
}

// DeleteAccountOutput is the response for deleting an account.
type DeleteAccountOutput struct {
	Body DeleteAccountResponse
}

// accountDeleter is the interface for deleting accounts.
type accountDeleter interface {
	DeleteAccount(ctx context.Context, id int64) (*service.Account, error)
}

// DeleteAccountHandler handles DELETE /accounts/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

// NewDeleteAccountHandler creates a new DeleteAccountHandler.
func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

// Register registers the delete account endpoint with the Huma API.
func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-account",
		Method:      http.MethodDelete,
		Path:        "/accounts/{id}",
		Summary:     "Delete an account",
		Description: "Deletes an account and returns the removed record.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *DeleteAccountInput) (*DeleteAccountOutput, error) {
	logData := logging.GetLogData(ctx)

	account, err := h.AccountService.DeleteAccount(ctx, input.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, apierror.New(http.StatusNotFound, "Account not found")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not delete account")
	}

	if logData != nil {
		logData.AddData("accountID", account.ID)
	}

	return &DeleteAccountOutput{Body: DeleteAccountResponse{
		Success: true,
		Deleted: accountFromService(*account),
	}}, nil
}
