package otf

import (
	"context"
	"fmt"
	"net/http"

	"github.com/kylep/otf/models"
)

// GetMaxHR fetches the member's max heart rate from the telemetry API.
func (c *Client) GetMaxHR(ctx context.Context) (models.TelemetryMaxHR, error) {
	path := fmt.Sprintf("/v1/physVars/maxHr/%s", c.memberUUID())
	raw, err := c.do(ctx, http.MethodGet, HostDNA, path, nil, nil, nil)
	if err != nil {
		return models.TelemetryMaxHR{}, err
	}

	obj, err := asObject(raw, "max hr")
	if err != nil {
		return models.TelemetryMaxHR{}, err
	}
	return models.ParseTelemetryMaxHR(obj)
}

// GetTelemetry fetches the sampled heart-rate/equipment series for one
// class. maxDataPoints <= 0 leaves the resolution to the server.
func (c *Client) GetTelemetry(ctx context.Context, classHistoryUUID string, maxDataPoints int) (*models.Record, error) {
	params := map[string]any{
		"classHistoryUuid": classHistoryUUID,
		"maxDataPoints":    nil,
	}
	if maxDataPoints > 0 {
		params["maxDataPoints"] = maxDataPoints
	}

	raw, err := c.do(ctx, http.MethodGet, HostDNA, "/v1/performance/summary", params, nil, nil)
	if err != nil {
		return nil, err
	}

	obj, err := asObject(raw, "telemetry")
	if err != nil {
		return nil, err
	}
	return models.TelemetrySchema.Parse(obj)
}
