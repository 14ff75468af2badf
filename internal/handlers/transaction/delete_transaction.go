package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/apierror"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction ID"`
}

// DeleteTransactionResponse is the response body for deleting a transaction.
type DeleteTransactionResponse struct {
	Success bool        `json:"success" doc:"Always true on success"`
	Deleted Transaction `json:"deleted" doc:"The deleted transaction record"`
}

// DeleteTransactionOutput is the response for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponse
}

// transactionDeleter is the interface for deleting transactions.
type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id int64) (*service.Transaction, error)
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

// Register registers the delete transaction endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/transactions/{id}",
		Summary:     "Delete a transaction",
		Description: "Deletes a transaction and returns the removed record.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	logData := logging.GetLogData(ctx)

	transaction, err := h.TransactionService.DeleteTransaction(ctx, input.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil, apierror.New(http.StatusNotFound, "Transaction not found")
		}
		if logData != nil {
			logData.AddData("error", err.Error())
		}
		return nil, apierror.New(http.StatusInternalServerError, "Could not delete transaction")
	}

	if logData != nil {
		logData.AddData("transactionID", transaction.ID)
	}

	return &DeleteTransactionOutput{Body: DeleteTransactionResponse{
		Success: true,
		Deleted: transactionFromService(*transaction),
	}}, nil
}
