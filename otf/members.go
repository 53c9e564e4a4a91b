package otf

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kylep/otf/models"
)

// GetMemberDetail fetches the account detail for the logged-in member.
func (c *Client) GetMemberDetail(ctx context.Context) (models.MemberDetail, error) {
	path := fmt.Sprintf("/member/members/%s", c.memberUUID())
	raw, err := c.do(ctx, http.MethodGet, HostDefault, path, map[string]any{
		"include": "memberAddresses",
	}, nil, nil)
	if err != nil {
		return models.MemberDetail{}, err
	}

	data, err := dataField(raw, "member detail")
	if err != nil {
		return models.MemberDetail{}, err
	}
	obj, err := asObject(data, "member detail")
	if err != nil {
		return models.MemberDetail{}, err
	}
	return models.ParseMemberDetail(obj)
}

// GetMemberMembership fetches the member's membership record.
func (c *Client) GetMemberMembership(ctx context.Context) (*models.Record, error) {
	path := fmt.Sprintf("/member/members/%s/memberships", c.memberUUID())
	raw, err := c.do(ctx, http.MethodGet, HostDefault, path, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	data, err := dataField(raw, "membership")
	if err != nil {
		return nil, err
	}
	obj, err := asObject(data, "membership")
	if err != nil {
		return nil, err
	}
	return models.MemberMembershipSchema.Parse(obj)
}

// GetMemberPurchases fetches the member's purchase history.
func (c *Client) GetMemberPurchases(ctx context.Context) (*models.List, error) {
	path := fmt.Sprintf("/member/members/%s/purchases", c.memberUUID())
	raw, err := c.do(ctx, http.MethodGet, HostDefault, path, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	data, err := dataField(raw, "purchases")
	if err != nil {
		return nil, err
	}
	items, err := asList(data, "purchases")
	if err != nil {
		return nil, err
	}

	recs := make([]*models.Record, 0, len(items))
	for _, item := range items {
		rec, err := models.MemberPurchaseSchema.Parse(item)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return models.NewList("purchases", recs), nil
}

// GetTotalClasses fetches the member's attendance counters.
func (c *Client) GetTotalClasses(ctx context.Context) (*models.Record, error) {
	path := fmt.Sprintf("/member/members/%s/total-classes", c.memberUUID())
	raw, err := c.do(ctx, http.MethodGet, HostDefault, path, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	data, err := dataField(raw, "total classes")
	if err != nil {
		return nil, err
	}
	obj, err := asObject(data, "total classes")
	if err != nil {
		return nil, err
	}
	return models.TotalClassesSchema.Parse(obj)
}
