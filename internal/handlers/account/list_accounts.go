package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListAccountsOutput is the response for listing accounts: a bare array
// ordered by id ascending.
type ListAccountsOutput struct {
	Body []Account
}

// accountLister is the interface for listing accounts.
type accountLister interface {
	ListAccounts(ctx context.Context) ([]service.Account, error)
}

// ListAccountsHandler handles GET /accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

// NewListAccountsHandler creates a new ListAccountsHandler.
func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

// Register registers the list accounts endpoint with the Huma API.
func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/accounts",
		Summary:     "List accounts",
		Description: "Returns all accounts ordered by id ascending.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, _ *struct{}) (*ListAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	accounts, err := h.AccountService.ListAccounts(ctx)
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not fetch accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := make([]Account, len(accounts))
	for i, a := range accounts {
		resp[i] = accountFromService(a)
	}

	return &ListAccountsOutput{Body: resp}, nil
}
