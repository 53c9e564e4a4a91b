package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// The booking service fronts its login with a Cognito user pool; password
// auth against the pool's public app client yields the token pair.
const (
	defaultAuthEndpoint = "https://cognito-idp.us-east-1.amazonaws.com/"
	defaultClientID     = "65knvqta6p37efc2l3eh26pl5o"
)

// ErrBadCredentials indicates the username/password pair was rejected.
var ErrBadCredentials = errors.New("invalid username or password")

// Authenticator performs password logins and produces Credentials.
type Authenticator struct {
	endpoint   string
	clientID   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewAuthenticator creates an authenticator against the default login
// endpoint. The endpoint is overridable for tests.
func NewAuthenticator(logger zerolog.Logger) *Authenticator {
	return &Authenticator{
		endpoint:   defaultAuthEndpoint,
		clientID:   defaultClientID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// WithEndpoint points the authenticator at a different login URL.
func (a *Authenticator) WithEndpoint(endpoint string) *Authenticator {
	a.endpoint = endpoint
	return a
}

type initiateAuthRequest struct {
	AuthFlow       string            `json:"AuthFlow"`
	ClientID       string            `json:"ClientId"`
	AuthParameters map[string]string `json:"AuthParameters"`
}

type initiateAuthResponse struct {
	AuthenticationResult struct {
		IDToken     string `json:"IdToken"`
		AccessToken string `json:"AccessToken"`
		ExpiresIn   int    `json:"ExpiresIn"`
	} `json:"AuthenticationResult"`
	Type    string `json:"__type"`
	Message string `json:"message"`
}

// Login exchanges a username/password pair for a Credential.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*Credential, error) {
	payload, err := json.Marshal(initiateAuthRequest{
		AuthFlow: "USER_PASSWORD_AUTH",
		ClientID: a.clientID,
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-amz-json-1.0")
	req.Header.Set("X-Amz-Target", "AWSCognitoIdentityProviderService.InitiateAuth")

	a.logger.Debug().Str("username", username).Msg("Authenticating")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read auth response: %w", err)
	}

	var result initiateAuthResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Type == "NotAuthorizedException" || result.Type == "UserNotFoundException" {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("auth failed with status %d: %s", resp.StatusCode, result.Message)
	}

	cred := &Credential{
		Username:    username,
		IDToken:     result.AuthenticationResult.IDToken,
		AccessToken: result.AuthenticationResult.AccessToken,
	}

	memberUUID, expiresAt, err := tokenClaims(cred.IDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to parse issued token: %w", err)
	}
	cred.MemberUUID = memberUUID
	cred.ExpiresAt = expiresAt
	if cred.ExpiresAt.IsZero() && result.AuthenticationResult.ExpiresIn > 0 {
		cred.ExpiresAt = time.Now().Add(time.Duration(result.AuthenticationResult.ExpiresIn) * time.Second)
	}

	a.logger.Debug().Time("expires_at", cred.ExpiresAt).Msg("Authentication succeeded")
	return cred, nil
}

// Resolve returns a usable credential for username: the cached one when
// still valid, otherwise a fresh login (cached best-effort afterwards).
func Resolve(ctx context.Context, cache Cache, auth *Authenticator, username, password string) (*Credential, error) {
	cred, err := cache.Load(username)
	if err != nil {
		auth.logger.Warn().Err(err).Msg("Token cache unreadable, re-authenticating")
	}
	if cred != nil && !cred.Expired() {
		return cred, nil
	}

	cred, err = auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := cache.Save(cred); err != nil {
		auth.logger.Warn().Err(err).Msg("Failed to persist token cache")
	}
	return cred, nil
}
