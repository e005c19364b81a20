package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "user-service/internal/domain/user"
)

func TestUserRepoMem_FindByID_Absent(t *testing.T) {
	repo := NewUserRepoMem(zaptest.NewLogger(t))

	u, err := repo.FindByID(context.Background(), 1)

	assert.NoError(t, err)
	assert.Nil(t, u)
}

func TestUserRepoMem_Save_AssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepoMem(zaptest.NewLogger(t))
	ctx := context.Background()

	a := domain.New("Alice", "alice@example.com")
	b := domain.New("Bob", "bob@example.com")

	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, b))

	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(2), b.ID)
}

func TestUserRepoMem_SaveThenFind(t *testing.T) {
	repo := NewUserRepoMem(zaptest.NewLogger(t))
	ctx := context.Background()

	u := domain.New("Bob", "bob@x.com")
	require.NoError(t, repo.Save(ctx, u))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bob", got.Name)
	assert.Equal(t, "bob@x.com", got.Email)
}

func TestUserRepoMem_Save_OverwritesExistingID(t *testing.T) {
	repo := NewUserRepoMem(zaptest.NewLogger(t))
	ctx := context.Background()

	u := domain.New("Bob", "bob@x.com")
	require.NoError(t, repo.Save(ctx, u))

	updated := &domain.User{ID: u.ID, Name: "Robert", Email: "bob@x.com"}
	require.NoError(t, repo.Save(ctx, updated))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Robert", got.Name)
}

func TestUserRepoMem_FindByID_ReturnsCopy(t *testing.T) {
	repo := NewUserRepoMem(zaptest.NewLogger(t))
	ctx := context.Background()

	u := domain.New("Alice", "alice@example.com")
	require.NoError(t, repo.Save(ctx, u))

	first, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	first.Name = "Mallory"

	second, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", second.Name)
}
