package user

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/repository/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T, now time.Time) *Registry {
	t.Helper()
	return &Registry{store: storagetest.NewSQLite(t), now: func() time.Time { return now }}
}

func TestRegistry_CreateAssignsIdentity(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	r := newRegistry(t, now)
	ctx := context.Background()

	first, err := r.Create(ctx, &model.UserEntity{Email: "a@x.com", PasswordHash: "h1"})
	require.NoError(t, err)
	assert.Equal(t, uint64(now.UnixMilli()), first.ID)
	assert.Equal(t, now, first.CreatedAt)
	assert.Equal(t, constant.UserRole, first.Role)

	// same clock reading must not collide
	second, err := r.Create(ctx, &model.UserEntity{Email: "b@x.com", PasswordHash: "h2"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)

	users, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.Equal(t, "b@x.com", users[1].Email)
}

func TestRegistry_Get(t *testing.T) {
	r := newRegistry(t, time.Now())
	ctx := context.Background()

	created, err := r.Create(ctx, &model.UserEntity{Email: "a@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := r.Get(ctx, &model.UserFilter{Email: "a@x.com"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	got, err = r.Get(ctx, &model.UserFilter{ID: created.ID})
	require.NoError(t, err)
	require.NotNil(t, got)

	got, err = r.Get(ctx, &model.UserFilter{Email: "A@x.com"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRegistry_MalformedRegistryIsEmpty(t *testing.T) {
	s := storagetest.NewSQLite(t)
	storagetest.Put(t, s, constant.StorageKeyUserRegistry, "{not json")
	r := NewUserRepository(s)

	users, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	created, err := r.Create(context.Background(), &model.UserEntity{Email: "a@x.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestRegistry_UpdatePasswordHash(t *testing.T) {
	r := newRegistry(t, time.Now())
	ctx := context.Background()

	created, err := r.Create(ctx, &model.UserEntity{Email: "a@x.com", PasswordHash: "old"})
	require.NoError(t, err)

	require.NoError(t, r.UpdatePasswordHash(ctx, created.ID, "new"))
	got, err := r.Get(ctx, &model.UserFilter{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)

	assert.ErrorIs(t, r.UpdatePasswordHash(ctx, created.ID+100, "x"), ErrUserNotFound)
}
