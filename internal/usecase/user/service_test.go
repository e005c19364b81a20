package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "user-service/internal/domain/user"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockRepository) Save(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func setupTestService(t *testing.T) (*UserService, *MockRepository) {
	mockRepo := new(MockRepository)
	logger := zaptest.NewLogger(t)
	svc := NewUserService(mockRepo, logger)
	return svc, mockRepo
}

func TestGetUser_Found(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	stored := &domain.User{ID: 1, Name: "John Doe", Email: "john@example.com"}
	mockRepo.On("FindByID", ctx, uint64(1)).Return(stored, nil)

	u, err := svc.GetUser(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, stored, u)
	mockRepo.AssertExpectations(t)
}

func TestGetUser_Absent(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	// Absence is (nil, nil), not an error
	mockRepo.On("FindByID", ctx, mock.AnythingOfType("uint64")).Return(nil, nil)

	u, err := svc.GetUser(ctx, 99)

	assert.NoError(t, err)
	assert.Nil(t, u)
	mockRepo.AssertExpectations(t)
}

func TestGetUser_RepositoryError(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	repoErr := errors.New("connection reset")
	mockRepo.On("FindByID", ctx, uint64(1)).Return(nil, repoErr)

	u, err := svc.GetUser(ctx, 1)

	assert.Nil(t, u)
	// No error translation at this layer
	assert.Equal(t, repoErr, err)
}

func TestCreateUser_Success(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	mockRepo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Name == "Bob" && u.Email == "bob@x.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 7
	}).Return(nil)

	u, err := svc.CreateUser(ctx, "Bob", "bob@x.com")

	assert.NoError(t, err)
	assert.Equal(t, uint64(7), u.ID)
	assert.Equal(t, "Bob", u.Name)
	assert.Equal(t, "bob@x.com", u.Email)
	mockRepo.AssertExpectations(t)
}

func TestCreateUser_ForwardsSaveErrorUnchanged(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	saveErr := errors.New("disk full")
	mockRepo.On("Save", ctx, mock.Anything).Return(saveErr)

	u, err := svc.CreateUser(ctx, "Bob", "bob@x.com")

	assert.Nil(t, u)
	assert.Equal(t, saveErr, err)
	assert.EqualError(t, err, "disk full")
}

func TestCreateUser_NoValidation(t *testing.T) {
	svc, mockRepo := setupTestService(t)
	ctx := context.Background()

	// The service does not validate input; even a malformed email reaches
	// the repository untouched.
	mockRepo.On("Save", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "not-an-email" && u.ID == 0
	})).Return(nil)

	u, err := svc.CreateUser(ctx, "Bob", "not-an-email")

	assert.NoError(t, err)
	assert.Equal(t, "not-an-email", u.Email)
	mockRepo.AssertExpectations(t)
}
