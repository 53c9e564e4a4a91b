package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credential holds the token pair issued for one user. Every outbound
// API request must carry a non-expired IDToken as its bearer token.
type Credential struct {
	Username    string    `json:"username"`
	MemberUUID  string    `json:"member_uuid"`
	IDToken     string    `json:"id_token"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// expiryLeeway keeps us from sending a token that expires mid-request.
const expiryLeeway = 30 * time.Second

// Expired reports whether the token pair needs re-authentication.
func (c *Credential) Expired() bool {
	if c == nil || c.IDToken == "" {
		return true
	}
	return time.Now().After(c.ExpiresAt.Add(-expiryLeeway))
}

// tokenClaims extracts the expiry and subject from an ID token without
// verifying the signature. The issuing server verified it; we only need
// the claims to know when to re-authenticate and which member this is.
func tokenClaims(idToken string) (memberUUID string, expiresAt time.Time, err error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err = parser.ParseUnverified(idToken, claims); err != nil {
		return "", time.Time{}, err
	}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	if name, ok := claims["cognito:username"].(string); ok {
		memberUUID = name
	} else if sub, _ := claims.GetSubject(); sub != "" {
		memberUUID = sub
	}
	return memberUUID, expiresAt, nil
}
