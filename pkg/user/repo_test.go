package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookreviews/pkg/user"
)

func TestMemoryRepo_CreateAndFind(t *testing.T) {
	repo := user.NewMemoryRepo()

	err := repo.Create(&user.User{Username: "alice", Password: "secret"})
	assert.NoError(t, err)

	found, err := repo.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "secret", found.Password)

	err = repo.Create(&user.User{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, user.ErrUserExists)

	// first registration wins
	found, err = repo.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, "secret", found.Password)
}

func TestMemoryRepo_FindMissing(t *testing.T) {
	repo := user.NewMemoryRepo()

	found, err := repo.FindByUsername("ghost")
	assert.Nil(t, found)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestMemoryRepo_UsernameAvailable(t *testing.T) {
	repo := user.NewMemoryRepo()

	assert.True(t, repo.UsernameAvailable("bob"))

	assert.NoError(t, repo.Create(&user.User{Username: "bob", Password: "pw"}))
	assert.False(t, repo.UsernameAvailable("bob"))
}
