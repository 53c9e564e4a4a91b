package otf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// do dispatches one API request: builds the URL against the host alias,
// drops nil params, merges headers (auth headers win), and decodes the
// JSON body. Non-2xx responses become *HTTPError; transport failures
// *NetworkError; invalid JSON *DecodeError. Never retries.
func (c *Client) do(ctx context.Context, method string, host Host, path string, params map[string]any, headers map[string]string, body any) (any, error) {
	// Close can race in-flight requests; the flag is atomic so a
	// concurrent Close is observed without tearing.
	if c.closed.Load() {
		return nil, ErrClosed
	}

	base, ok := c.hosts[host]
	if !ok {
		return nil, fmt.Errorf("unknown host alias %d", host)
	}

	query := encodeParams(params)
	requestURL := base + path
	if query != "" {
		requestURL += "?" + query
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Caller headers first, auth headers last so they win on collision.
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	authHeaders, err := c.baseHeaders()
	if err != nil {
		return nil, err
	}
	for k, v := range authHeaders {
		req.Header.Set(k, v)
	}

	// Params only; bodies can carry tokens and never get logged.
	c.logger.Debug().
		Str("method", method).
		Str("url", requestURL).
		Interface("params", params).
		Msg("Making API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: requestURL, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: requestURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{Status: resp.StatusCode, URL: requestURL, Body: string(respBody)}
	}

	var decoded any
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return nil, &DecodeError{URL: requestURL, Err: err}
	}
	return decoded, nil
}

// encodeParams builds a query string, dropping nil-valued entries: absent
// is not the same as explicitly null on the wire.
func encodeParams(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	values := url.Values{}
	for k, v := range params {
		if v == nil {
			continue
		}
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}

// asObject asserts a decoded payload is a JSON object.
func asObject(v any, what string) (map[string]any, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected %s payload: expected object, got %T", what, v)
	}
	return obj, nil
}

// asList asserts a decoded payload is a JSON array of objects.
func asList(v any, what string) ([]map[string]any, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected %s payload: expected array, got %T", what, v)
	}
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected %s payload: expected array of objects", what)
		}
		out = append(out, obj)
	}
	return out, nil
}

// dataField unwraps the {"data": ...} envelope most endpoints use.
func dataField(v any, what string) (any, error) {
	obj, err := asObject(v, what)
	if err != nil {
		return nil, err
	}
	data, ok := obj["data"]
	if !ok {
		return nil, fmt.Errorf("unexpected %s payload: missing data field", what)
	}
	return data, nil
}
