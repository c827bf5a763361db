package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndResolve(t *testing.T) {
	key := []byte("test-secret")

	token, genErr := GenerateUserJWT(42, time.Hour, key)
	require.NoError(t, genErr)

	userID, resolveErr := ResolveUserID(token, key)
	require.NoError(t, resolveErr)
	assert.Equal(t, int64(42), userID)
}

func TestResolveWrongKey(t *testing.T) {
	token, genErr := GenerateUserJWT(42, time.Hour, []byte("right-key"))
	require.NoError(t, genErr)

	_, resolveErr := ResolveUserID(token, []byte("wrong-key"))
	assert.Error(t, resolveErr)
}

func TestResolveExpired(t *testing.T) {
	key := []byte("test-secret")

	token, genErr := GenerateUserJWT(42, -time.Minute, key)
	require.NoError(t, genErr)

	_, resolveErr := ResolveUserID(token, key)
	assert.ErrorIs(t, resolveErr, ErrTokenExpired)
}

func TestResolveGarbage(t *testing.T) {
	_, err := ResolveUserID("not-a-token", []byte("key"))
	assert.Error(t, err)
}
