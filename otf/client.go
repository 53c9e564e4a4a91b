package otf

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/kylep/otf/auth"
	"github.com/kylep/otf/models"
)

// Host selects one of the backend hostnames.
type Host int

const (
	// HostDefault is the primary member/studio API.
	HostDefault Host = iota
	// HostIO serves classes and performance summaries.
	HostIO
	// HostDNA serves telemetry data.
	HostDNA
)

func defaultHosts() map[Host]string {
	return map[Host]string{
		HostDefault: "https://api.orangetheory.co",
		HostIO:      "https://api.orangetheory.io",
		HostDNA:     "https://api.yuzu.orangetheory.com",
	}
}

// Client is an authenticated session against the booking service. It owns
// exactly one connection pool for its lifetime; all resource methods
// dispatch through it. Create with NewClient, release with Close.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	hosts      map[Host]string

	cred *auth.Credential

	member     models.MemberDetail
	homeStudio models.StudioDetail

	closeOnce sync.Once
	closed    atomic.Bool
}

// NewClient authenticates username/password (reusing the cached token
// pair when still valid) and bootstraps session context: the member
// detail and the member's home studio. Bad credentials surface as
// auth.ErrBadCredentials; bootstrap transport failures as *NetworkError.
func NewClient(ctx context.Context, username, password string, cache auth.Cache, logger zerolog.Logger, opts ...Option) (*Client, error) {
	authenticator := auth.NewAuthenticator(logger)
	cred, err := auth.Resolve(ctx, cache, authenticator, username, password)
	if err != nil {
		return nil, err
	}
	return newClientWithCredential(ctx, cred, logger, opts...)
}

func newClientWithCredential(ctx context.Context, cred *auth.Credential, logger zerolog.Logger, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		hosts:      defaultHosts(),
		cred:       cred,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.bootstrap(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// bootstrap populates the session context. The home studio fetch depends
// on the member detail, so the calls are sequential.
func (c *Client) bootstrap(ctx context.Context) error {
	member, err := c.GetMemberDetail(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch member detail: %w", err)
	}
	c.member = member

	studio, err := c.GetStudioDetail(ctx, member.HomeStudioUUID())
	if err != nil {
		return fmt.Errorf("failed to fetch home studio: %w", err)
	}
	c.homeStudio = studio

	c.logger.Debug().
		Str("member_uuid", member.UUID()).
		Str("home_studio", studio.Name()).
		Msg("Session bootstrapped")
	return nil
}

// Member returns the bootstrapped account detail.
func (c *Client) Member() models.MemberDetail { return c.member }

// HomeStudio returns the bootstrapped home studio detail.
func (c *Client) HomeStudio() models.StudioDetail { return c.homeStudio }

// Close releases the connection pool. Safe to call more than once; only
// the first call has effect. Callers should defer it on every path.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		c.httpClient.CloseIdleConnections()
		c.logger.Debug().Msg("Session closed")
	})
}

// baseHeaders derives the auth headers sent on every request.
func (c *Client) baseHeaders() (map[string]string, error) {
	if c.cred == nil || c.cred.IDToken == "" {
		return nil, ErrNoUser
	}
	return map[string]string{
		"Authorization": "Bearer " + c.cred.IDToken,
		"Content-Type":  "application/json",
		"Accept":        "application/json",
	}, nil
}

func (c *Client) memberUUID() string {
	if c.cred == nil {
		return ""
	}
	return c.cred.MemberUUID
}
