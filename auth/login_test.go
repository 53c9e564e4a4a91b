package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedIDToken(t *testing.T, memberUUID string, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"cognito:username": memberUUID,
		"exp":              expiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestLogin(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	idToken := signedIDToken(t, "member-1", expiresAt)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AWSCognitoIdentityProviderService.InitiateAuth", r.Header.Get("X-Amz-Target"))

		var req initiateAuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "USER_PASSWORD_AUTH", req.AuthFlow)
		assert.Equal(t, "test@example.com", req.AuthParameters["USERNAME"])
		assert.Equal(t, "hunter2", req.AuthParameters["PASSWORD"])

		json.NewEncoder(w).Encode(map[string]any{
			"AuthenticationResult": map[string]any{
				"IdToken":     idToken,
				"AccessToken": "access-token",
				"ExpiresIn":   3600,
			},
		})
	}))
	defer server.Close()

	a := NewAuthenticator(zerolog.Nop()).WithEndpoint(server.URL)
	cred, err := a.Login(context.Background(), "test@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "test@example.com", cred.Username)
	assert.Equal(t, "member-1", cred.MemberUUID)
	assert.Equal(t, idToken, cred.IDToken)
	assert.Equal(t, "access-token", cred.AccessToken)
	assert.True(t, cred.ExpiresAt.Equal(expiresAt), "expiry comes from the token claims")
	assert.False(t, cred.Expired())
}

func TestLoginBadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"__type":  "NotAuthorizedException",
			"message": "Incorrect username or password.",
		})
	}))
	defer server.Close()

	a := NewAuthenticator(zerolog.Nop()).WithEndpoint(server.URL)
	_, err := a.Login(context.Background(), "test@example.com", "wrong")
	require.ErrorIs(t, err, ErrBadCredentials)
}

func TestResolveUsesCacheWhenValid(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	cached := &Credential{
		Username:  "test@example.com",
		IDToken:   "cached-token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, cache.Save(cached))

	// Any login attempt would fail hard, proving the cache was used.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("login endpoint should not be called")
	}))
	defer server.Close()

	a := NewAuthenticator(zerolog.Nop()).WithEndpoint(server.URL)
	cred, err := Resolve(context.Background(), cache, a, "test@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "cached-token", cred.IDToken)
}

func TestResolveRefreshesExpiredCache(t *testing.T) {
	cache, err := NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cache.Save(&Credential{
		Username:  "test@example.com",
		IDToken:   "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}))

	expiresAt := time.Now().Add(time.Hour)
	idToken := signedIDToken(t, "member-1", expiresAt)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"AuthenticationResult": map[string]any{
				"IdToken":     idToken,
				"AccessToken": "access-token",
				"ExpiresIn":   3600,
			},
		})
	}))
	defer server.Close()

	a := NewAuthenticator(zerolog.Nop()).WithEndpoint(server.URL)
	cred, err := Resolve(context.Background(), cache, a, "test@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, idToken, cred.IDToken)

	// The fresh credential was persisted.
	reloaded, err := cache.Load("test@example.com")
	require.NoError(t, err)
	assert.Equal(t, idToken, reloaded.IDToken)
}
