package transaction

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

func newUpdateTestAPI(t *testing.T, svc transactionUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_UpdateTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, int64(7), mock.MatchedBy(func(u service.TransactionUpdate) bool {
		return u.Amount != nil && u.Amount.Equal(decimal.RequireFromString("-60")) &&
			u.Description == nil && u.Date == nil
	})).Return(serviceTransaction(7, 1, "-60"), nil)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/transactions/7", map[string]any{
		"amount": -60,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NoFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/transactions/7", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"No fields to update"}`, resp.Body.String())
	mockSvc.AssertNotCalled(t, "UpdateTransaction")
}

func TestHTTP_UpdateTransaction_UnrecognizedFieldsOnly(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/transactions/7", map[string]any{
		"foo": "bar",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"No fields to update"}`, resp.Body.String())
	mockSvc.AssertNotCalled(t, "UpdateTransaction")
}

func TestHTTP_UpdateTransaction_ClearDate(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, int64(7), mock.MatchedBy(func(u service.TransactionUpdate) bool {
		return u.ClearDate && u.Date == nil && u.Amount == nil
	})).Return(serviceTransaction(7, 1, "-45.5"), nil)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/transactions/7", map[string]any{
		"date": nil,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/transactions/7", map[string]any{
		"date": "15/03/2024",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Invalid date"}`, resp.Body.String())
	mockSvc.AssertNotCalled(t, "UpdateTransaction")
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, int64(99), mock.Anything).
		Return(nil, service.ErrNotFound)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/transactions/99", map[string]any{
		"category": "travel",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"Transaction not found"}`, resp.Body.String())
}

func TestHTTP_UpdateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, int64(7), mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newUpdateTestAPI(t, mockSvc).Patch("/transactions/7", map[string]any{
		"description": "Rent",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Could not update transaction"}`, resp.Body.String())
}
