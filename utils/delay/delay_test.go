package delay

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWait(t *testing.T) {
	t.Run("elapses", func(t *testing.T) {
		start := time.Now()
		assert.NoError(t, Wait(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("zero duration", func(t *testing.T) {
		assert.NoError(t, Wait(context.Background(), 0))
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, Wait(ctx, 0), context.Canceled)
		assert.ErrorIs(t, Wait(ctx, time.Hour), context.Canceled)
	})

	t.Run("cancelled while waiting", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		start := time.Now()
		assert.ErrorIs(t, Wait(ctx, time.Hour), context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, Wait(ctx, time.Hour), context.DeadlineExceeded)
	})
}
