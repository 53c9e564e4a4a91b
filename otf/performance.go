package otf

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kylep/otf/models"
)

// The performance-summary API identifies the caller through an extra
// header rather than the URL. It rides alongside the auth headers, which
// still win on any collision.
func (c *Client) perfHeaders() map[string]string {
	return map[string]string{"koji-member-id": c.memberUUID()}
}

// GetPerformanceSummaries fetches the most recent workout summaries.
// limit <= 0 leaves the page size to the server.
func (c *Client) GetPerformanceSummaries(ctx context.Context, limit int) (*models.List, error) {
	params := map[string]any{"limit": nil}
	if limit > 0 {
		params["limit"] = limit
	}

	raw, err := c.do(ctx, http.MethodGet, HostIO, "/v1/performance-summaries", params, c.perfHeaders(), nil)
	if err != nil {
		return nil, err
	}

	obj, err := asObject(raw, "performance summaries")
	if err != nil {
		return nil, err
	}
	items, err := asList(obj["items"], "performance summaries")
	if err != nil {
		return nil, err
	}

	recs := make([]*models.Record, 0, len(items))
	for _, item := range items {
		summary, err := models.ParsePerformanceSummary(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, summary.Record)
	}

	c.logger.Debug().Int("count", len(recs)).Msg("Retrieved performance summaries")
	return models.NewList("performance_summaries", recs), nil
}

// GetPerformanceSummary fetches one workout summary by ID.
func (c *Client) GetPerformanceSummary(ctx context.Context, id string) (models.PerformanceSummary, error) {
	path := fmt.Sprintf("/v1/performance-summaries/%s", id)
	raw, err := c.do(ctx, http.MethodGet, HostIO, path, nil, c.perfHeaders(), nil)
	if err != nil {
		return models.PerformanceSummary{}, err
	}

	obj, err := asObject(raw, "performance summary")
	if err != nil {
		return models.PerformanceSummary{}, err
	}
	return models.ParsePerformanceSummary(obj)
}
