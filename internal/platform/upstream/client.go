// Package upstream wraps the clinic records backend HTTP API. Every domain
// source (records, patients, appointments, next-record) goes through this
// client; the backend owns the database, this service never touches it.
package upstream

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type Client struct {
	http   *resty.Client
	logger zerolog.Logger
}

func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	hc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{http: hc, logger: logger}
}

// GetJSON issues a GET and decodes the JSON response body into out.
// A transport failure or non-2xx status is an error; the backend's
// in-body "error" fields are left for the caller to interpret.
func (c *Client) GetJSON(ctx context.Context, path string, query map[string]string, out any) error {
	req := c.http.R().SetContext(ctx).SetResult(out)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("backend GET %s: %w", path, err)
	}
	if resp.IsError() {
		c.logger.Warn().Int("status", resp.StatusCode()).Str("path", path).Msg("backend error status")
		return fmt.Errorf("backend GET %s: status %d", path, resp.StatusCode())
	}
	return nil
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(out).
		Post(path)
	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("backend request failed")
		return fmt.Errorf("backend POST %s: %w", path, err)
	}
	if resp.IsError() {
		c.logger.Warn().Int("status", resp.StatusCode()).Str("path", path).Msg("backend error status")
		return fmt.Errorf("backend POST %s: status %d", path, resp.StatusCode())
	}
	return nil
}
