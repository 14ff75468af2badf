package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
)

// AccountCashflowInput is the Huma input for the cashflow endpoint.
type AccountCashflowInput struct {
	ID int64 `path:"id" doc:"Account ID"`
}

// AccountCashflowBody is the response body for the cashflow endpoint. The
// cashflow is a JSON number, not a string.
type AccountCashflowBody struct {
	AccountID int64   `json:"account_id" doc:"Account ID"`
	Cashflow  float64 `json:"cashflow" doc:"Sum of transaction amounts, 0 when none"`
}

// AccountCashflowOutput is the response for the cashflow endpoint.
type AccountCashflowOutput struct {
	Body AccountCashflowBody
}

// cashflowGetter is the interface for computing an account's cashflow.
type cashflowGetter interface {
	Cashflow(ctx context.Context, id int64) (decimal.Decimal, error)
}

// AccountCashflowHandler handles GET /accounts/{id}/cashflow.
type AccountCashflowHandler struct {
	AccountService cashflowGetter
}

// NewAccountCashflowHandler creates a new AccountCashflowHandler.
func NewAccountCashflowHandler(svc cashflowGetter) *AccountCashflowHandler {
	return &AccountCashflowHandler{AccountService: svc}
}

// Register registers the cashflow endpoint with the Huma API.
func (h *AccountCashflowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "account-cashflow",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}/cashflow",
		Summary:     "Get account cashflow",
		Description: "Returns the signed sum of the account's transaction amounts.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *AccountCashflowHandler) handle(ctx context.Context, input *AccountCashflowInput) (*AccountCashflowOutput, error) {
	logData := logging.GetLogData(ctx)

	cashflow, err := h.AccountService.Cashflow(ctx, input.ID)
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not fetch cashflow")
	}

	return &AccountCashflowOutput{Body: AccountCashflowBody{
		AccountID: input.ID,
		Cashflow:  cashflow.InexactFloat64(),
	}}, nil
}
