package resettoken

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/muhammadheryan/fashion-directory/model"
	"github.com/muhammadheryan/fashion-directory/repository/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Lifecycle(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Store{store: storagetest.NewSQLite(t), now: func() time.Time { return now }}
	ctx := context.Background()

	token := &model.ResetToken{ID: "jti-1", UserID: 1, Email: "a@x.com", ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, s.Save(ctx, token))

	got, err := s.Get(ctx, "jti-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a@x.com", got.Email)

	require.NoError(t, s.Delete(ctx, "jti-1"))
	got, err = s.Get(ctx, "jti-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// deleting twice is fine
	require.NoError(t, s.Delete(ctx, "jti-1"))
}

func TestStore_ExpiredTokensAreInvisibleAndPruned(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Store{store: storagetest.NewSQLite(t), now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &model.ResetToken{ID: "old", ExpiresAt: now.Add(time.Minute)}))

	now = now.Add(2 * time.Minute)
	got, err := s.Get(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, s.Save(ctx, &model.ResetToken{ID: "new", ExpiresAt: now.Add(time.Minute)}))
	all, err := s.list(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new", all[0].ID)
}

func TestStore_ConsumeHandsOutTokenOnce(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Store{store: storagetest.NewSQLite(t), now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &model.ResetToken{ID: "jti-1", UserID: 7, ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, s.Save(ctx, &model.ResetToken{ID: "jti-2", UserID: 8, ExpiresAt: now.Add(time.Hour)}))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := s.Consume(ctx, "jti-1")
			assert.NoError(t, err)
			if got != nil {
				assert.Equal(t, uint64(7), got.UserID)
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())

	other, err := s.Get(ctx, "jti-2")
	require.NoError(t, err)
	assert.NotNil(t, other)
}

func TestStore_ConsumeIgnoresExpired(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Store{store: storagetest.NewSQLite(t), now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &model.ResetToken{ID: "old", ExpiresAt: now.Add(time.Minute)}))
	now = now.Add(time.Hour)

	got, err := s.Consume(ctx, "old")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ConcurrentSavesKeepEveryToken(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &Store{store: storagetest.NewSQLite(t), now: func() time.Time { return now }}
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, &model.ResetToken{ID: fmt.Sprintf("jti-%d", i), ExpiresAt: now.Add(time.Hour)}))
		}()
	}
	wg.Wait()

	all, err := s.list(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)
}
