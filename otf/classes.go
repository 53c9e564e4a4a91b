package otf

import (
	"context"
	"net/http"
	"strings"

	"github.com/kylep/otf/models"
)

// GetClasses fetches upcoming classes for the given studios, defaulting
// to the member's home studio when none are given.
func (c *Client) GetClasses(ctx context.Context, studioUUIDs ...string) (*models.List, error) {
	if len(studioUUIDs) == 0 {
		studioUUIDs = []string{c.homeStudio.UUID()}
	}

	raw, err := c.do(ctx, http.MethodGet, HostIO, "/v1/classes", map[string]any{
		"studio_ids": strings.Join(studioUUIDs, ","),
	}, nil, nil)
	if err != nil {
		return nil, err
	}

	data, err := dataField(raw, "classes")
	if err != nil {
		return nil, err
	}
	items, err := asList(data, "classes")
	if err != nil {
		return nil, err
	}

	recs := make([]*models.Record, 0, len(items))
	for _, item := range items {
		class, err := models.ParseClass(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, class.Record)
	}

	c.logger.Debug().Int("count", len(recs)).Msg("Retrieved classes")
	return models.NewList("classes", recs), nil
}
