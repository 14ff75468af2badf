package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListAccountTransactionsInput is the Huma input for listing an account's
// transactions.
type ListAccountTransactionsInput struct {
	ID int64 `path:"id" doc:"Account ID"`
}

// ListAccountTransactionsOutput is the response for listing an account's
// transactions, date descending.
type ListAccountTransactionsOutput struct {
	Body []Transaction
}

// accountTransactionLister is the interface for listing an account's
// transactions.
type accountTransactionLister interface {
	ListAccountTransactions(ctx context.Context, accountID int64) ([]service.Transaction, error)
}

// ListAccountTransactionsHandler handles GET /accounts/{id}/transactions.
type ListAccountTransactionsHandler struct {
	TransactionService accountTransactionLister
}

// NewListAccountTransactionsHandler creates a new ListAccountTransactionsHandler.
func NewListAccountTransactionsHandler(svc accountTransactionLister) *ListAccountTransactionsHandler {
	return &ListAccountTransactionsHandler{TransactionService: svc}
}

// Register registers the list account transactions endpoint with the Huma API.
func (h *ListAccountTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-account-transactions",
		Method:      http.MethodGet,
		Path:        "/accounts/{id}/transactions",
		Summary:     "List an account's transactions",
		Description: "Returns the account's transactions ordered by date descending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListAccountTransactionsHandler) handle(ctx context.Context, input *ListAccountTransactionsInput) (*ListAccountTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	transactions, err := h.TransactionService.ListAccountTransactions(ctx, input.ID)
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not fetch transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := make([]Transaction, len(transactions))
	for i, t := range transactions {
		resp[i] = transactionFromService(t)
	}

	return &ListAccountTransactionsOutput{Body: resp}, nil
}
