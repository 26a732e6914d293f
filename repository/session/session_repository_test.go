package session

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/fashion-directory/constant"
	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/repository/storage"
	"github.com/muhammadheryan/fashion-directory/repository/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetGetClear(t *testing.T) {
	s := storagetest.NewSQLite(t)
	repo := NewSessionRepository(s)
	ctx := context.Background()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	user := &model.SessionUser{
		ID:        7,
		FirstName: "Ama",
		Email:     "ama@x.com",
		CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Role:      constant.UserRole,
	}
	require.NoError(t, repo.Set(ctx, user))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	raw, err := s.Load(ctx, constant.StorageKeySessionUser)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetMalformed(t *testing.T) {
	for _, raw := range []string{"{broken", "null"} {
		s := storagetest.NewSQLite(t)
		storagetest.Put(t, s, constant.StorageKeySessionUser, raw)

		got, err := NewSessionRepository(s).Get(context.Background())
		assert.Nil(t, got, raw)
		assert.ErrorIs(t, err, storage.ErrMalformedState, raw)
	}
}
