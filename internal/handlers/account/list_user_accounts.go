package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListUserAccountsInput is the Huma input for listing a user's accounts.
type ListUserAccountsInput struct {
	ID int64 `path:"id" doc:"User ID"`
}

// ListUserAccountsOutput is the response for listing a user's accounts,
// newest first, each carrying its cashflow sum.
type ListUserAccountsOutput struct {
	Body []AccountWithCashflow
}

// userAccountLister is the interface for listing a user's accounts.
type userAccountLister interface {
	ListUserAccounts(ctx context.Context, userID int64) ([]service.AccountWithCashflow, error)
}

// ListUserAccountsHandler handles GET /users/{id}/accounts.
type ListUserAccountsHandler struct {
	AccountService userAccountLister
}

// NewListUserAccountsHandler creates a new ListUserAccountsHandler.
func NewListUserAccountsHandler(svc userAccountLister) *ListUserAccountsHandler {
	return &ListUserAccountsHandler{AccountService: svc}
}

// Register registers the list user accounts endpoint with the Huma API.
func (h *ListUserAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-user-accounts",
		Method:      http.MethodGet,
		Path:        "/users/{id}/accounts",
		Summary:     "List a user's accounts",
		Description: "Returns the user's accounts, newest first, each with its cashflow.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListUserAccountsHandler) handle(ctx context.Context, input *ListUserAccountsInput) (*ListUserAccountsOutput, error) {
	logData := logging.GetLogData(ctx)

	accounts, err := h.AccountService.ListUserAccounts(ctx, input.ID)
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not fetch accounts")
	}

	if logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	resp := make([]AccountWithCashflow, len(accounts))
	for i, a := range accounts {
		resp[i] = AccountWithCashflow{
			Account:  accountFromService(a.Account),
			Cashflow: a.Cashflow.InexactFloat64(),
		}
	}

	return &ListUserAccountsOutput{Body: resp}, nil
}
