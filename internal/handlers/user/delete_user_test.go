package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

func newDeleteTestAPI(t *testing.T, svc userDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteUserHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteUser_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("DeleteUser", mock.Anything, int64(1)).
		Return(&service.User{ID: 1, Name: "Ada", Email: "ada@example.com"}, nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/users/1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteUserResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Deleted.ID)
}

func TestHTTP_DeleteUser_NotFound(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("DeleteUser", mock.Anything, int64(42)).
		Return(nil, service.ErrNotFound)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/users/42")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, resp.Body.String())
}

func TestHTTP_DeleteUser_ServiceError(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("DeleteUser", mock.Anything, int64(1)).
		Return(nil, errors.New("database unavailable"))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/users/1")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Could not delete user"}`, resp.Body.String())
}
