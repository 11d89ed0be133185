package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/restaurant-pos/internal/model"
	"github.com/iliyamo/restaurant-pos/internal/store"
	"github.com/iliyamo/restaurant-pos/internal/utils"
)

func newUser(t *testing.T, email string) model.User {
	t.Helper()
	hash, err := utils.HashPassword("s3cret", 4)
	require.NoError(t, err)
	return model.User{Name: "Dana Lee", Email: email, Role: model.UserServer, Active: true, PasswordHash: hash}
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	s := store.NewUserStore(nil)
	_, err := s.Create(newUser(t, "dana@pos.local"))
	require.NoError(t, err)

	_, err = s.Create(newUser(t, "DANA@pos.local"))
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	s := store.NewUserStore(nil)
	u, err := s.Create(newUser(t, "dana@pos.local"))
	require.NoError(t, err)

	got, err := s.Authenticate("dana@pos.local", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate("dana@pos.local", "wrong")
	assert.ErrorIs(t, err, store.ErrBadCredentials)
	_, err = s.Authenticate("nobody@pos.local", "s3cret")
	assert.ErrorIs(t, err, store.ErrBadCredentials)

	_, err = s.Deactivate(u.ID)
	require.NoError(t, err)
	_, err = s.Authenticate("dana@pos.local", "s3cret")
	assert.ErrorIs(t, err, store.ErrBadCredentials)
}

func TestUserUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	s := store.NewUserStore(nil)
	u, err := s.Create(newUser(t, "dana@pos.local"))
	require.NoError(t, err)

	edited := u
	edited.Name = "Dana L."
	edited.PasswordHash = ""
	got, err := s.Update(u.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, "Dana L.", got.Name)
	assert.Equal(t, u.PasswordHash, got.PasswordHash)
}
