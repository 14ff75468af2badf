package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

// mockUserService mocks the narrow user service interfaces used by the
// handlers in this package.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, create service.UserCreate) (*service.User, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]service.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.User), args.Error(1)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, update service.UserUpdate) (*service.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) (*service.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.User), args.Error(1)
}

func newCreateTestAPI(t *testing.T, svc userCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateUserHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateUser_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, service.UserCreate{
		Name:  "Ada",
		Email: "ada@example.com",
	}).Return(&service.User{ID: 1, Name: "Ada", Email: "ada@example.com"}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/users", CreateUserBody{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "ada@example.com", body.Email)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateUser_IgnoresUnrecognizedFields(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, service.UserCreate{
		Name:  "Ada",
		Email: "ada@example.com",
	}).Return(&service.User{ID: 1, Name: "Ada", Email: "ada@example.com"}, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/users", map[string]any{
		"name":  "Ada",
		"email": "ada@example.com",
		"role":  "admin",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateUser_MissingName(t *testing.T) {
	mockSvc := new(mockUserService)

	resp := newCreateTestAPI(t, mockSvc).Post("/users", CreateUserBody{
		Email: "ada@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.JSONEq(t, `{"error":"Name and email are required"}`, resp.Body.String())
	mockSvc.AssertNotCalled(t, "CreateUser")
}

func TestHTTP_CreateUser_MissingEmail(t *testing.T) {
	mockSvc := new(mockUserService)

	resp := newCreateTestAPI(t, mockSvc).Post("/users", CreateUserBody{
		Name: "Ada",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateUser")
}

func TestHTTP_CreateUser_DuplicateEmail(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, service.ErrConflict)

	resp := newCreateTestAPI(t, mockSvc).Post("/users", CreateUserBody{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, resp.Body.String())
}

func TestHTTP_CreateUser_ServiceError(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockSvc).Post("/users", CreateUserBody{
		Name:  "Ada",
		Email: "ada@example.com",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.JSONEq(t, `{"error":"Could not create user"}`, resp.Body.String())
}
