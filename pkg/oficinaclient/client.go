package oficinaclient

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/config"
	apperrors "oficina-tg-client/internal/errors"
)

// Client represents the repair-shop platform API client
type Client struct {
	httpClient *resty.Client
	diagClient *resty.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a new platform API client.
// Every call is sent once, failures are returned to the caller.
func NewClient(backendConfig config.BackendConfig, logger *logrus.Logger) *Client {
	baseURL := strings.TrimRight(backendConfig.URL, "/")

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Duration(backendConfig.TimeoutSeconds) * time.Second).
		SetHeader("Accept", "application/json")

	diagClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Duration(backendConfig.DiagnosticTimeoutSeconds) * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		diagClient: diagClient,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// BaseURL returns the backend address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// decode checks the response status and unmarshals the body into out
func (c *Client) decode(operation string, resp *resty.Response, err error, out interface{}) error {
	if err != nil {
		c.logger.Errorf("%s request failed: %v", operation, err)
		return fmt.Errorf("%s request failed: %w", operation, err)
	}

	c.logger.Debugf("%s %s -> %d", resp.Request.Method, resp.Request.URL, resp.StatusCode())

	if !resp.IsSuccess() {
		body := strings.TrimSpace(string(resp.Body()))
		c.logger.Errorf("%s failed - Status: %d, Response: %s", operation, resp.StatusCode(), body)
		return &apperrors.BackendAPIError{
			Operation: operation,
			Status:    resp.StatusCode(),
			Message:   body,
		}
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", operation, err)
	}

	return nil
}
