package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetBody(t *testing.T) {
	body, err := ResetBody("http://localhost:3000/reset-password", "a.b.c", ResetMailData{Name: "Ama", ExpiresAt: "12:00"})
	require.NoError(t, err)

	assert.Contains(t, body, `href="http://localhost:3000/reset-password?token=a.b.c"`)
	assert.Contains(t, body, "Hello Ama")
	assert.Contains(t, body, "valid until 12:00")
}

func TestResetBody_EscapesName(t *testing.T) {
	body, err := ResetBody("http://localhost/reset", "t", ResetMailData{Name: "<b>x</b>"})
	require.NoError(t, err)

	assert.NotContains(t, body, "<b>x</b>")
}

func TestResetBody_BadURL(t *testing.T) {
	_, err := ResetBody("://bad", "t", ResetMailData{})
	assert.Error(t, err)
}
