package user

import (
	"context"

	"go.uber.org/zap"

	domain "user-service/internal/domain/user"
)

// UserService is a thin façade over an injected Repository. It holds the
// only reference to its repository for its entire lifetime.
type UserService struct {
	repo Repository  // Repository for data access
	log  *zap.Logger // Logger for structured logging
}

// NewUserService creates a new UserService that takes ownership of repo.
func NewUserService(repo Repository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

var _ Service = (*UserService)(nil)

// GetUser retrieves a user by ID. It delegates directly to the repository:
// no added logic, no error translation. A missing user is (nil, nil).
func (s *UserService) GetUser(ctx context.Context, id uint64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateUser constructs a user and hands it to the repository. The
// repository's result is forwarded unchanged; the façade performs no
// validation of its own, that is the transport layer's concern.
func (s *UserService) CreateUser(ctx context.Context, name, email string) (*domain.User, error) {
	s.log.Info("creating user", zap.String("name", name), zap.String("email", email))

	u := domain.New(name, email)
	if err := s.repo.Save(ctx, u); err != nil {
		s.log.Error("failed to save user", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	return u, nil
}
