package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "user-service/internal/domain/user"
	pkgerrors "user-service/pkg/errors"
)

// MockUserService is a mock implementation of user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func setupTest(t *testing.T) (*gin.Engine, *UserHandler, *MockUserService) {
	gin.SetMode(gin.TestMode)
	mockSvc := new(MockUserService)
	logger := zaptest.NewLogger(t)
	handler := NewUserHandler(mockSvc, logger)

	r := gin.New()
	return r, handler, mockSvc
}

func TestCreateUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.POST("/users", handler.CreateUser)

		reqBody := CreateUserRequest{
			Name:  "John Doe",
			Email: "john@example.com",
		}
		jsonBody, _ := json.Marshal(reqBody)

		created := &domain.User{ID: 1, Name: reqBody.Name, Email: reqBody.Email}
		mockSvc.On("CreateUser", mock.Anything, reqBody.Name, reqBody.Email).Return(created, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp UserResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, uint64(1), resp.ID)
		assert.Equal(t, "John Doe", resp.Name)
	})

	t.Run("Invalid Request Body", func(t *testing.T) {
		r, handler, _ := setupTest(t)
		r.POST("/users", handler.CreateUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Validation Error - Bad Email", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.POST("/users", handler.CreateUser)

		jsonBody, _ := json.Marshal(CreateUserRequest{
			Name:  "John Doe",
			Email: "not-an-email",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "validation_error", resp.Error)
		assert.Contains(t, resp.Message, "Email must be a valid email")

		// The service is never reached on a binding failure
		mockSvc.AssertNotCalled(t, "CreateUser")
	})

	t.Run("Validation Error - Name Too Short", func(t *testing.T) {
		r, handler, _ := setupTest(t)
		r.POST("/users", handler.CreateUser)

		jsonBody, _ := json.Marshal(CreateUserRequest{
			Name:  "Jo",
			Email: "john@example.com",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Message, "Name must be at least 3 characters")
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.POST("/users", handler.CreateUser)

		jsonBody, _ := json.Marshal(CreateUserRequest{
			Name:  "John Doe",
			Email: "john@example.com",
		})

		mockSvc.On("CreateUser", mock.Anything, "John Doe", "john@example.com").
			Return(nil, pkgerrors.NewAlreadyExistsError("user", "email already exists"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "already_exists", resp.Error)
	})

	t.Run("Service Error", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.POST("/users", handler.CreateUser)

		jsonBody, _ := json.Marshal(CreateUserRequest{
			Name:  "John Doe",
			Email: "john@example.com",
		})

		mockSvc.On("CreateUser", mock.Anything, "John Doe", "john@example.com").
			Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/users", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.GET("/users/:id", handler.GetUser)

		stored := &domain.User{ID: 5, Name: "Jane", Email: "jane@example.com"}
		mockSvc.On("GetUser", mock.Anything, uint64(5)).Return(stored, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(5), resp.ID)
		assert.Equal(t, "Jane", resp.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.GET("/users/:id", handler.GetUser)

		mockSvc.On("GetUser", mock.Anything, uint64(99)).Return(nil, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/99", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "not_found", resp.Error)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.GET("/users/:id", handler.GetUser)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/abc", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "GetUser")
	})

	t.Run("Service Error", func(t *testing.T) {
		r, handler, mockSvc := setupTest(t)
		r.GET("/users/:id", handler.GetUser)

		mockSvc.On("GetUser", mock.Anything, uint64(5)).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/users/5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
