package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharthi/entity"
	"sharthi/store"
)

func TestSessionRepository(t *testing.T) {
	repo := store.NewSessionRepository(t.TempDir())

	_, err := repo.Get()
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Empty(t, repo.Token())

	session := entity.Session{
		Token: "tok-123",
		User: entity.User{
			ID:    "usr-1",
			Name:  "Asha",
			Email: "asha@example.com",
			Role:  entity.RoleCreator,
		},
	}
	require.NoError(t, repo.Save(session))

	got, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.Equal(t, "tok-123", repo.Token())

	require.NoError(t, repo.Clear())

	_, err = repo.Get()
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Empty(t, repo.Token())
}

func TestSessionRepositoryClearIsIdempotent(t *testing.T) {
	repo := store.NewSessionRepository(t.TempDir())

	require.NoError(t, repo.Clear())
	require.NoError(t, repo.Clear())
}
