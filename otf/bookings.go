package otf

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kylep/otf/models"
)

const bookingDateLayout = "2006-01-02"

// GetBookings fetches the member's bookings between start and end,
// optionally narrowed to one status. Zero times and an empty status are
// left off the wire entirely.
//
// Each booking gets the is_home_studio derived field patched in by
// comparing the class studio against the session's home studio. This
// enrichment is deliberately booking-only; other studio-referencing
// entities are returned as parsed.
func (c *Client) GetBookings(ctx context.Context, start, end time.Time, status models.BookingStatus) (*models.List, error) {
	params := map[string]any{
		"startDate": nil,
		"endDate":   nil,
		"statuses":  nil,
	}
	if !start.IsZero() {
		params["startDate"] = start.Format(bookingDateLayout)
	}
	if !end.IsZero() {
		params["endDate"] = end.Format(bookingDateLayout)
	}
	if status != "" {
		params["statuses"] = string(status)
	}

	path := fmt.Sprintf("/member/members/%s/bookings", c.memberUUID())
	raw, err := c.do(ctx, http.MethodGet, HostDefault, path, params, nil, nil)
	if err != nil {
		return nil, err
	}

	data, err := dataField(raw, "bookings")
	if err != nil {
		return nil, err
	}
	items, err := asList(data, "bookings")
	if err != nil {
		return nil, err
	}

	homeStudioUUID := c.homeStudio.UUID()
	recs := make([]*models.Record, 0, len(items))
	for _, item := range items {
		booking, err := models.ParseBooking(item)
		if err != nil {
			return nil, err
		}
		booking.SetDerived("is_home_studio", booking.Class().StudioUUID() == homeStudioUUID)
		recs = append(recs, booking.Record)
	}

	c.logger.Debug().Int("count", len(recs)).Msg("Retrieved bookings")
	return models.NewList("bookings", recs), nil
}
