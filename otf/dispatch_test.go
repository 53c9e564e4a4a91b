package otf

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylep/otf/auth"
)

// testClient builds a client pointed at a mock server without running
// the bootstrap calls.
func testClient(serverURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		logger:     zerolog.Nop(),
		hosts: map[Host]string{
			HostDefault: serverURL,
			HostIO:      serverURL,
			HostDNA:     serverURL,
		},
		cred: &auth.Credential{
			Username:   "test@example.com",
			MemberUUID: "member-1",
			IDToken:    "test-token",
			ExpiresAt:  time.Now().Add(time.Hour),
		},
	}
}

func TestDoFiltersNilParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2024-01-01", q.Get("startDate"))
		assert.False(t, q.Has("endDate"), "nil param must be absent from the query")
		assert.False(t, q.Has("statuses"), "nil param must be absent from the query")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/things", map[string]any{
		"startDate": "2024-01-01",
		"endDate":   nil,
		"statuses":  nil,
	}, nil, nil)
	require.NoError(t, err)
}

func TestDoNon2xxReturnsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not here"}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/missing", nil, nil, nil)
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 404, httpErr.Status)
	assert.True(t, httpErr.IsNotFound())
	assert.Contains(t, httpErr.Body, "not here")
	assert.Contains(t, httpErr.URL, "/missing")
}

func TestDoHeaderMerge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Caller-supplied headers ride along.
		assert.Equal(t, "member-1", r.Header.Get("koji-member-id"))
		// Auth headers win on collision.
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.do(context.Background(), http.MethodGet, HostIO, "/perf", nil, map[string]string{
		"koji-member-id": "member-1",
		"Authorization":  "Bearer attacker-token",
	}, nil)
	require.NoError(t, err)
}

func TestDoDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	c := testClient(server.URL)
	_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/things", nil, nil, nil)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDoNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := testClient(server.URL)
	_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/things", nil, nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestDoWithoutUser(t *testing.T) {
	c := testClient("http://localhost:0")
	c.cred = nil

	_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/things", nil, nil, nil)
	require.ErrorIs(t, err, ErrNoUser)
}

func TestCloseDuringInflightRequests(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	c := testClient(server.URL)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/things", nil, nil, nil)
			if err != nil {
				// Once Close lands, every subsequent call must fail this way.
				assert.ErrorIs(t, err, ErrClosed)
				return
			}
		}
	}()

	c.Close()
	<-done

	_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/things", nil, nil, nil)
	require.ErrorIs(t, err, ErrClosed)
}

func TestDoAfterClose(t *testing.T) {
	c := testClient("http://localhost:0")
	c.Close()
	c.Close() // second close is a no-op

	_, err := c.do(context.Background(), http.MethodGet, HostDefault, "/things", nil, nil, nil)
	require.ErrorIs(t, err, ErrClosed)
}

func TestEncodeParams(t *testing.T) {
	assert.Equal(t, "", encodeParams(nil))
	assert.Equal(t, "", encodeParams(map[string]any{"a": nil}))

	got := encodeParams(map[string]any{"lat": 41.9, "page": 2, "q": "tread run"})
	assert.Equal(t, "lat=41.9&page=2&q=tread+run", got)
}
