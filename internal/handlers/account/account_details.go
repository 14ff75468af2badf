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

// AccountDetailsInput is the Huma input for fetching account details.
type AccountDetailsInput struct {
	ID int64 `path:"id" doc:"Account ID"`
}

// AccountDetailsOutput is the response for fetching account details.
type AccountDetailsOutput struct {
	Body AccountDetails
}

// accountDetailsGetter is the interface for fetching an account with its
// transactions.
type accountDetailsGetter interface {
	GetAccountDetails(ctx context.Context, id int64) (*service.AccountDetails, error)
}

// AccountDetailsHandler handles GET /accounts/{id}/details.
type AccountDetailsHandler struct {
	AccountService accountDetailsGetter
}

// NewAccountDetailsHandler creates a new AccountDetailsHandler.
func NewAccountDetailsHandler(svc accountDetailsGetter) *AccountDetailsHandler {
	return &AccountDetailsHandler{AccountService: svc}
}

// Register registers the account details endpoint with the Huma API.
func (h *AccountDetailsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "account-details",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}/details",
		Summary:     "Get account details",
		Description: "Returns the account merged with its transactions, date descending.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *AccountDetailsHandler) handle(ctx context.Context, input *AccountDetailsInput) (*AccountDetailsOutput, error) {
	logData := logging.GetLogData(ctx)

	details, err := h.AccountService.GetAccountDetails(ctx, input.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, apierror.New(http.StatusNotFound, "Account not found")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not fetch account details")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(details.Transactions))
	}

	resp := AccountDetails{
		Account:      accountFromService(details.Account),
		Transactions: make([]AccountTransaction, len(details.Transactions)),
	}
	for i, t := range details.Transactions {
		resp.Transactions[i] = transactionFromService(t)
	}

	return &AccountDetailsOutput{Body: resp}, nil
}
