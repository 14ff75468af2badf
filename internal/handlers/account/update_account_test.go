package account

import (
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

func newUpdateTestAPI(t *testing.T, svc accountUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateAccountHandler(svc).Register(api)
	return api
}

func TestHTTP_UpdateAccount_Success(t *testing.T) {
	newName := "Savings"
	mockSvc := new(mockAccountService)
	mockSvc.On("UpdateAccount", mock.Anything, int64(1), service.AccountUpdate{
		Name: &newName,
	}).Return(serviceAccount(1, 3), nil)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/accounts/1", map[string]any{
		"name": newName,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateAccount_NoFields(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/accounts/1", map[string]any{})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"No fields to update"}`, resp.Body.String())
	mockSvc.AssertNotCalled(t, "UpdateAccount")
}

func TestHTTP_UpdateAccount_UnrecognizedFieldsOnly(t *testing.T) {
	mockSvc := new(mockAccountService)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/accounts/1", map[string]any{
		"foo": "bar",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"No fields to update"}`, resp.Body.String())
	mockSvc.AssertNotCalled(t, "UpdateAccount")
}

func TestHTTP_UpdateAccount_NotFound(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("UpdateAccount", mock.Anything, int64(99), mock.Anything).
		Return(nil, service.ErrNotFound)

	resp := newUpdateTestAPI(t, mockSvc).Patch("/accounts/99", map[string]any{
		"currency": "USD",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"Account not found"}`, resp.Body.String())
}

func TestHTTP_UpdateAccount_ServiceError(t *testing.T) {
	mockSvc := new(mockAccountService)
	mockSvc.On("UpdateAccount", mock.Anything, int64(1), mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newUpdateTestAPI(t, mockSvc).Patch("/accounts/1", map[string]any{
		"type": "savings",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Could not update account"}`, resp.Body.String())
}
