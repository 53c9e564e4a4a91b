package otf

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/kylep/otf/models"
)

// GetStudioDetail fetches one studio by UUID.
func (c *Client) GetStudioDetail(ctx context.Context, studioUUID string) (models.StudioDetail, error) {
	path := fmt.Sprintf("/mobile/v1/studios/%s", studioUUID)
	raw, err := c.do(ctx, http.MethodGet, HostDefault, path, map[string]any{
		"include": "locations",
	}, nil, nil)
	if err != nil {
		return models.StudioDetail{}, err
	}

	data, err := dataField(raw, "studio detail")
	if err != nil {
		return models.StudioDetail{}, err
	}
	obj, err := asObject(data, "studio detail")
	if err != nil {
		return models.StudioDetail{}, err
	}
	return models.ParseStudioDetail(obj)
}

// GetStudioDetails fetches several studios concurrently, preserving the
// requested order. The shared connection pool handles the parallelism;
// one failure cancels the remaining fetches.
func (c *Client) GetStudioDetails(ctx context.Context, studioUUIDs ...string) (*models.List, error) {
	recs := make([]*models.Record, len(studioUUIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, uuid := range studioUUIDs {
		i, uuid := i, uuid
		g.Go(func() error {
			detail, err := c.GetStudioDetail(gctx, uuid)
			if err != nil {
				return err
			}
			mu.Lock()
			recs[i] = detail.Record
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return models.NewList("studios", recs), nil
}

// SearchStudios finds studios within distance miles of a coordinate.
func (c *Client) SearchStudios(ctx context.Context, latitude, longitude, distance float64) (*models.List, error) {
	raw, err := c.do(ctx, http.MethodGet, HostDefault, "/mobile/v1/studios", map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
		"distance":  distance,
	}, nil, nil)
	if err != nil {
		return nil, err
	}
	return c.parseStudioList(raw, "studio search")
}

// GetFavoriteStudios fetches the member's favorite studios.
func (c *Client) GetFavoriteStudios(ctx context.Context) (*models.List, error) {
	path := fmt.Sprintf("/member/members/%s/favorite-studios", c.memberUUID())
	raw, err := c.do(ctx, http.MethodGet, HostDefault, path, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return c.parseStudioList(raw, "favorite studios")
}

func (c *Client) parseStudioList(raw any, what string) (*models.List, error) {
	data, err := dataField(raw, what)
	if err != nil {
		return nil, err
	}
	items, err := asList(data, what)
	if err != nil {
		return nil, err
	}

	recs := make([]*models.Record, 0, len(items))
	for _, item := range items {
		detail, err := models.ParseStudioDetail(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, detail.Record)
	}

	c.logger.Debug().Int("count", len(recs)).Str("kind", what).Msg("Retrieved studios")
	return models.NewList("studios", recs), nil
}
