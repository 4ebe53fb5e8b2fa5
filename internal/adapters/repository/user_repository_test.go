package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskstore/api/internal/domain/entities"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t).DB)
	ctx := context.Background()

	user := entities.NewUser("alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUserRepository_UniqueConstraints(t *testing.T) {
	repo := NewUserRepository(newTestDB(t).DB)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, entities.NewUser("bob", "bob@example.com")))

	err := repo.Create(ctx, entities.NewUser("bob", "other@example.com"))
	assert.Error(t, err)

	err = repo.Create(ctx, entities.NewUser("other", "bob@example.com"))
	assert.Error(t, err)
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t).DB)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.Error(t, err)
}
