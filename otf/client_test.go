package otf

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kylep/otf/auth"
)

func memberDetailPayload() map[string]any {
	return map[string]any{
		"memberId":   float64(100),
		"memberUUId": "member-1",
		"firstName":  "Pat",
		"lastName":   "Lee",
		"email":      "test@example.com",
		"homeStudio": map[string]any{
			"studioUUId": "studio-home",
			"studioName": "AnyTown",
		},
	}
}

func studioDetailPayload(uuid, name string) map[string]any {
	return map[string]any{
		"studioUUId":   uuid,
		"studioName":   name,
		"studioId":     float64(42),
		"studioStatus": "Active",
		"timeZone":     "America/Chicago",
	}
}

func classPayload(studioUUID string) map[string]any {
	return map[string]any{
		"classUUId":     "class-" + studioUUID,
		"name":          "Orange 60",
		"startDateTime": "2024-01-01T10:00:00",
		"endDateTime":   "2024-01-01T11:00:00",
		"isAvailable":   true,
		"isCancelled":   false,
		"programName":   "ORANGE 60",
		"coachId":       float64(7),
		"studio": map[string]any{
			"studioUUId": studioUUID,
			"studioName": "Studio " + studioUUID,
			"status":     "Active",
			"timeZone":   "America/Chicago",
			"studioId":   float64(42),
		},
		"coach": map[string]any{
			"coachUUId": "coach-1",
			"name":      "Sam",
			"firstName": "Sam",
			"lastName":  "Coe",
		},
		"location": map[string]any{
			"address1":  "1 Main St",
			"city":      "AnyTown",
			"latitude":  41.9,
			"longitude": -87.6,
			"phone":     "555-0100",
		},
	}
}

func bookingPayload(id int, studioUUID, status string) map[string]any {
	return map[string]any{
		"classBookingId":   float64(id),
		"classBookingUUId": fmt.Sprintf("booking-%d", id),
		"studioId":         float64(42),
		"classId":          float64(9),
		"isIntro":          false,
		"memberId":         float64(100),
		"status":           status,
		"createdDate":      "2024-01-01T00:00:00",
		"updatedDate":      "2024-01-01T00:00:00",
		"isDeleted":        false,
		"class":            classPayload(studioUUID),
	}
}

func wrapData(v any) map[string]any {
	return map[string]any{"data": v}
}

// bookingServer serves the bootstrap endpoints plus a bookings listing.
func bookingServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/member/members/member-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wrapData(memberDetailPayload()))
	})
	mux.HandleFunc("/mobile/v1/studios/studio-home", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(wrapData(studioDetailPayload("studio-home", "AnyTown")))
	})
	mux.HandleFunc("/member/members/member-1/bookings", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(wrapData([]any{
			bookingPayload(1, "studio-home", "Booked"),
			bookingPayload(2, "studio-away", "waitlisted"),
		}))
	})
	return httptest.NewServer(mux)
}

func bootstrapClient(t *testing.T, serverURL string) *Client {
	t.Helper()
	cred := &auth.Credential{
		Username:   "test@example.com",
		MemberUUID: "member-1",
		IDToken:    "test-token",
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	client, err := newClientWithCredential(context.Background(), cred, zerolog.Nop(),
		WithHostOverride(HostDefault, serverURL),
		WithHostOverride(HostIO, serverURL),
		WithHostOverride(HostDNA, serverURL),
		WithTimeout(5*time.Second),
	)
	require.NoError(t, err)
	return client
}

func TestClientBootstrap(t *testing.T) {
	server := bookingServer(t)
	defer server.Close()

	client := bootstrapClient(t, server.URL)
	defer client.Close()

	assert.Equal(t, "member-1", client.Member().UUID())
	assert.Equal(t, "studio-home", client.Member().HomeStudioUUID())
	assert.Equal(t, "AnyTown", client.HomeStudio().Name())
}

func TestGetBookingsEnrichment(t *testing.T) {
	server := bookingServer(t)
	defer server.Close()

	client := bootstrapClient(t, server.URL)
	defer client.Close()

	bookings, err := client.GetBookings(context.Background(), time.Now(), time.Now().AddDate(0, 0, 7), "")
	require.NoError(t, err)
	require.Equal(t, 2, bookings.Len())

	home := bookings.Records[0]
	away := bookings.Records[1]

	v, ok := home.Get("is_home_studio")
	require.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = away.Get("is_home_studio")
	require.True(t, ok)
	assert.Equal(t, false, v)

	// Statuses normalize to their canonical form regardless of wire case.
	assert.Equal(t, "Booked", home.String("status"))
	assert.Equal(t, "Waitlisted", away.String("status"))
}

func TestGetBookingsTable(t *testing.T) {
	server := bookingServer(t)
	defer server.Close()

	client := bootstrapClient(t, server.URL)
	defer client.Close()

	bookings, err := client.GetBookings(context.Background(), time.Time{}, time.Time{}, "")
	require.NoError(t, err)

	table := bookings.ToTable([]string{"otf_class.studio.studio_name", "status", "is_home_studio"})
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Studio Name", "Status", "Home Studio"}, table.Headers)
	assert.Equal(t, []string{"Studio studio-home", "Booked", "true"}, table.Rows[0])
}

func TestGetStudioDetails(t *testing.T) {
	mux := http.NewServeMux()
	for _, uuid := range []string{"s1", "s2", "s3"} {
		mux.HandleFunc("/mobile/v1/studios/"+uuid, func(w http.ResponseWriter, r *http.Request) {
			name := "Studio " + r.URL.Path[len("/mobile/v1/studios/"):]
			json.NewEncoder(w).Encode(wrapData(studioDetailPayload(r.URL.Path[len("/mobile/v1/studios/"):], name)))
		})
	}
	server := httptest.NewServer(mux)
	defer server.Close()

	c := testClient(server.URL)
	list, err := c.GetStudioDetails(context.Background(), "s1", "s2", "s3")
	require.NoError(t, err)
	require.Equal(t, 3, list.Len())

	// Order matches the request order despite concurrent fetches.
	assert.Equal(t, "s1", list.Records[0].String("studio_uuid"))
	assert.Equal(t, "s2", list.Records[1].String("studio_uuid"))
	assert.Equal(t, "s3", list.Records[2].String("studio_uuid"))
}

func TestGetPerformanceSummaries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/performance-summaries", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "member-1", r.Header.Get("koji-member-id"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []any{
				map[string]any{
					"id": "perf-1",
					"details": map[string]any{
						"calories_burned": float64(500),
						"splat_points":    float64(12),
					},
				},
			},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := testClient(server.URL)
	list, err := c.GetPerformanceSummaries(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, 1, list.Len())
	assert.Equal(t, int64(12), list.Records[0].Int("details.splat_points"))
}

func TestGetMaxHR(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/physVars/maxHr/member-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"memberUuid": "member-1",
			"maxHr":      map[string]any{"type": "Formula", "value": float64(191)},
		})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := testClient(server.URL)
	maxHR, err := c.GetMaxHR(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "member-1", maxHR.MemberUUID())
	assert.Equal(t, int64(191), maxHR.Value())
}
