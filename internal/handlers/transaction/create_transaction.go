package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction. A
// zero amount is rejected, matching the required-field check on account_id.
// Unrecognized fields are ignored.
type CreateTransactionBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	AccountID   int64   `json:"account_id,omitempty" doc:"Owning account ID"`
	Amount      float64 `json:"amount,omitempty" doc:"Signed amount, positive=inflow"`
	Description string  `json:"description,omitempty" doc:"Free-form description"`
	Category    string  `json:"category,omitempty" doc:"Free-form category"`
	Date        *string `json:"date,omitempty" doc:"Transaction date, RFC3339 or YYYY-MM-DD"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the response for creating a transaction.
type CreateTransactionOutput struct {
	Status int
	Body   Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.TransactionCreate) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/transactions",
		Summary:     "Create a transaction",
		Description: "Records a transaction against an account. Date is optional and stored as null when absent.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreate, error) {
	if input.Body.AccountID == 0 || input.Body.Amount == 0 {
		return service.TransactionCreate{}, apierror.New(http.StatusBadRequest, "account_id and amount are required")
	}

	create := service.TransactionCreate{
		AccountID:   input.Body.AccountID,
		Amount:      decimal.NewFromFloat(input.Body.Amount),
		Description: input.Body.Description,
		Category:    input.Body.Category,
	}

	if input.Body.Date != nil && *input.Body.Date != "" {
		parsed, err := parseDate(*input.Body.Date)
		if err != nil {
			return service.TransactionCreate{}, apierror.New(http.StatusBadRequest, "Invalid date")
		}
		create.Date = &parsed
	}

	return create, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	transaction, err := h.TransactionService.CreateTransaction(ctx, create)
	if err != nil {
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not create transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", transaction.ID)
	}

	return &CreateTransactionOutput{
		Status: http.StatusCreated,
		Body:   transactionFromService(*transaction),
	}, nil
}
