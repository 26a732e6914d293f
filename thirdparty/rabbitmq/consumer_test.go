package rabbitmq

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsumer(apiURL string) *Consumer {
	return &Consumer{apiURL: apiURL, apiKey: "internal-key", httpClient: &http.Client{Timeout: time.Second}}
}

func TestConsumer_HandleCallsExpireAPI(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestConsumer(srv.URL).handle(context.Background(), []byte(`{"token_id":"abc-123","expires_at":"2025-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, "/internal/v1/password-reset/abc-123/expire", gotPath)
	assert.Equal(t, "Bearer internal-key", gotAuth)
}

func TestConsumer_HandleServerErrorIsRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestConsumer(srv.URL).handle(context.Background(), []byte(`{"token_id":"abc"}`))
	require.Error(t, err)
	assert.NotEqual(t, errUndecodable, err)
}

func TestConsumer_HandleClientErrorIsAcked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestConsumer(srv.URL).handle(context.Background(), []byte(`{"token_id":"abc"}`))
	assert.NoError(t, err)
}

func TestConsumer_HandleUndecodable(t *testing.T) {
	c := newTestConsumer("http://127.0.0.1:1")

	assert.Equal(t, errUndecodable, c.handle(context.Background(), []byte(`not json`)))
	assert.Equal(t, errUndecodable, c.handle(context.Background(), []byte(`{}`)))
}

func TestDelayMillis(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, int64(90000), delayMillis(now.Add(90*time.Second), now))
	assert.Equal(t, int64(0), delayMillis(now.Add(-time.Second), now))
}
