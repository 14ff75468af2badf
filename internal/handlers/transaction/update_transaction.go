package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// OptionalDate is a date body field that distinguishes an explicit null
// from an absent field. A null clears the stored date.
type OptionalDate struct {
	Present bool
	Null    bool
	Value   string
}

// UnmarshalJSON records that the field appeared in the request before
// decoding its value.
func (d *OptionalDate) UnmarshalJSON(data []byte) error {
	d.Present = true
	if string(data) == "null" {
		d.Null = true
		return nil
	}
	return json.Unmarshal(data, &d.Value)
}

// Schema returns the OpenAPI schema for an optional, nullable date.
func (d OptionalDate) Schema(_ huma.Registry) *huma.Schema {
	return &huma.Schema{
		Type:     huma.TypeString,
		Nullable: true,
	}
}

// UpdateTransactionBody is the request body for a partial transaction update.
// Absent fields are left untouched; unrecognized fields are ignored.
type UpdateTransactionBody struct {
	_ struct{} `json:"-" additionalProperties:"true"`

	Amount      *float64     `json:"amount,omitempty" doc:"New signed amount"`
	Description *string      `json:"description,omitempty" doc:"New description"`
	Category    *string      `json:"category,omitempty" doc:"New category"`
	Date        OptionalDate `json:"date,omitempty" doc:"New date, RFC3339 or YYYY-MM-DD, null clears it"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   int64 `path:"id" doc:"Transaction ID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the response for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id int64, update service.TransactionUpdate) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/transactions/{id}",
		Summary:     "Update a transaction",
		Description: "Applies a partial update over amount, description, category, and date.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.TransactionUpdate, error) {
	update := service.TransactionUpdate{
		Description: input.Body.Description,
		Category:    input.Body.Category,
	}

	if input.Body.Amount != nil {
		amount := decimal.NewFromFloat(*input.Body.Amount)
		update.Amount = &amount
	}

	if input.Body.Date.Present {
		if input.Body.Date.Null {
			update.ClearDate = true
		} else {
			parsed, err := parseDate(input.Body.Date.Value)
			if err != nil {
				return service.TransactionUpdate{}, apierror.New(http.StatusBadRequest, "Invalid date")
			}
			update.Date = &parsed
		}
	}

	if update.IsEmpty() {
		return service.TransactionUpdate{}, apierror.New(http.StatusBadRequest, "No fields to update")
	}

	return update, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	update, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	transaction, err := h.TransactionService.UpdateTransaction(ctx, input.ID, update)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, apierror.New(http.StatusNotFound, "Transaction not found")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not update transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", transaction.ID)
	}

	return &UpdateTransactionOutput{Body: transactionFromService(*transaction)}, nil
}
