package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCacheRoundTrip(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	cred := &Credential{
		Username:    "test@example.com",
		MemberUUID:  "member-1",
		IDToken:     "id-token",
		AccessToken: "access-token",
		ExpiresAt:   time.Now().Add(time.Hour).Truncate(time.Second),
	}
	require.NoError(t, cache.Save(cred))

	loaded, err := cache.Load("test@example.com")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, cred.IDToken, loaded.IDToken)
	assert.Equal(t, cred.MemberUUID, loaded.MemberUUID)
	assert.True(t, cred.ExpiresAt.Equal(loaded.ExpiresAt))
}

func TestFileCacheMissingEntry(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	loaded, err := cache.Load("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileCacheIsolatesUsernames(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Save(&Credential{Username: "a@example.com", IDToken: "tok-a"}))
	require.NoError(t, cache.Save(&Credential{Username: "b@example.com", IDToken: "tok-b"}))

	a, err := cache.Load("a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-a", a.IDToken)

	b, err := cache.Load("b@example.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-b", b.IDToken)
}

func TestCredentialExpired(t *testing.T) {
	var nilCred *Credential
	assert.True(t, nilCred.Expired())
	assert.True(t, (&Credential{}).Expired())

	assert.True(t, (&Credential{
		IDToken:   "tok",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Expired())

	// Inside the leeway window counts as expired.
	assert.True(t, (&Credential{
		IDToken:   "tok",
		ExpiresAt: time.Now().Add(10 * time.Second),
	}).Expired())

	assert.False(t, (&Credential{
		IDToken:   "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}).Expired())
}
