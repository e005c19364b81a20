package memory

import (
	"context"
	"sync"

	"go.uber.org/zap"

	domain "user-service/internal/domain/user"
)

// UserRepoMem implements the user Repository interface with an in-process
// map. It is used in tests and as a fallback when no database is reachable.
//
// Id-assignment policy: a simple in-process counter, starting at 1. Data does
// not survive a restart.
type UserRepoMem struct {
	mu     sync.RWMutex
	users  map[uint64]domain.User
	nextID uint64
	log    *zap.Logger
}

// NewUserRepoMem creates an empty in-memory user store.
func NewUserRepoMem(log *zap.Logger) *UserRepoMem {
	return &UserRepoMem{
		users: make(map[uint64]domain.User),
		log:   log,
	}
}

// FindByID retrieves a user by ID. A missing entry is (nil, nil).
func (r *UserRepoMem) FindByID(ctx context.Context, id uint64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	// Return a copy so callers cannot mutate the stored value.
	return &u, nil
}

// Save stores the user. A zero ID receives the next counter value, which is
// written back into u. Saving an existing ID overwrites that entry.
func (r *UserRepoMem) Save(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == 0 {
		r.nextID++
		u.ID = r.nextID
	} else if u.ID > r.nextID {
		r.nextID = u.ID
	}

	r.users[u.ID] = *u
	r.log.Debug("user saved in memory", zap.Uint64("id", u.ID))
	return nil
}
