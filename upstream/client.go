// Package upstream forwards searches to the upstream REST API.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// Client issues authenticated GET requests against BaseURL.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// response is the envelope returned by every collection endpoint.
type response struct {
	Data []json.RawMessage `json:"data"`
}

// NewClient returns a client for the api rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// URL returns the request url for the resource and query.
func (c *Client) URL(resource string, q string) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s/%s", strings.TrimSuffix(c.BaseURL, "/"), resource))
	if err != nil {
		return "", errors.Wrapf(err, "failed to parse url for resource '%s'", resource)
	}

	values := url.Values{}
	values.Set("q", q)
	u.RawQuery = values.Encode()

	return u.String(), nil
}

// Fetch performs a single GET for resource with the q parameter and returns
// the records in the order the api returned them. Nothing is retried.
func (c *Client) Fetch(ctx context.Context, token string, resource string, q string) ([]json.RawMessage, error) {
	u, err := c.URL(resource, q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed building request for %s", resource)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed requesting %s", resource)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("upstream returned %d for %s", resp.StatusCode, resource)
	}

	body := new(response)
	if err := json.NewDecoder(resp.Body).Decode(body); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", resource)
	}

	if body.Data == nil {
		return []json.RawMessage{}, nil
	}

	return body.Data, nil
}
