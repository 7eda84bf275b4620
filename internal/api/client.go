// Package api provides a typed HTTP client for the Debaite backend.
// All domain logic lives server-side; this client serializes requests,
// decodes responses and maps failures onto the shared error types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/debaite/podium/internal/errors"
	"github.com/debaite/podium/internal/logging"
)

// Client defines the operations the Debaite backend exposes.
type Client interface {
	// CheckProviderStatus verifies one provider credential against the backend.
	CheckProviderStatus(ctx context.Context, req CheckStatusRequest) (*CheckStatusResponse, error)
	// InitDebate creates a debate session and returns its identifier.
	InitDebate(ctx context.Context, cfg DebateConfig) (string, error)
	// NextStep advances a debate by one event.
	NextStep(ctx context.Context, debateID string) (*StepResponse, error)
	// ListResults retrieves summaries of all persisted debates.
	ListResults(ctx context.Context) ([]ResultSummary, error)
	// GetResult retrieves the full record of one persisted debate.
	GetResult(ctx context.Context, id string) (*ResultDetail, error)
	// ListConfigs retrieves summaries of server-side saved configurations.
	ListConfigs(ctx context.Context) ([]ConfigSummary, error)
	// GetConfig retrieves one server-side saved configuration by filename.
	GetConfig(ctx context.Context, filename string) (*DebateConfig, error)
	// Health pings the backend.
	Health(ctx context.Context) error
}

// HTTPClient is the real client for the Debaite backend.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logging.Logger
}

// NewHTTPClient creates a client for the backend at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration, log *logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NopLogger()
	}
	return &HTTPClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// NewHTTPClientWithHTTPClient creates a client with a custom http.Client.
func NewHTTPClientWithHTTPClient(baseURL string, httpClient *http.Client, log *logging.Logger) *HTTPClient {
	if log == nil {
		log = logging.NopLogger()
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// BaseURL returns the configured backend origin.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// doJSON executes one request against the backend and decodes the JSON
// response into out. body may be nil for GET requests. Non-2xx statuses
// are mapped to APIError; 404 is reported through notFound when set.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any, notFound error) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.NewAPIError("encode request", err).WithEndpoint(path).WithRetryable(false)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.NewAPIError("create request", err).WithEndpoint(path).WithRetryable(false)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("backend request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.ErrCanceled
		}
		return errors.NewAPIError("request failed", errors.Join(errors.ErrBackendUnavailable, err)).WithEndpoint(path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewAPIError("read response", err).WithEndpoint(path)
	}

	c.log.Debug("backend response", "path", path, "status", resp.StatusCode, "bytes", len(raw))

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		return notFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.NewAPIError(fmt.Sprintf("unexpected status: %s", truncateBody(raw)), nil).
			WithEndpoint(path).
			WithStatusCode(resp.StatusCode)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.NewAPIError("decode response", err).WithEndpoint(path).WithRetryable(false)
		}
	}

	return nil
}

// truncateBody keeps error messages readable when the backend returns a
// large error page.
func truncateBody(raw []byte) string {
	const limit = 200
	s := string(raw)
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

// CheckProviderStatus verifies one provider credential against the backend.
func (c *HTTPClient) CheckProviderStatus(ctx context.Context, req CheckStatusRequest) (*CheckStatusResponse, error) {
	if req.APIKey == "" {
		return nil, errors.ErrProviderKeyMissing
	}

	var resp CheckStatusResponse
	if err := c.doJSON(ctx, http.MethodPost, "/providers/check_status", req, &resp, nil); err != nil {
		return nil, err
	}

	c.log.Info("provider check completed", "provider", req.Provider, "status", resp.Status)
	return &resp, nil
}

// InitDebate creates a debate session and returns its identifier.
func (c *HTTPClient) InitDebate(ctx context.Context, cfg DebateConfig) (string, error) {
	var resp InitResponse
	if err := c.doJSON(ctx, http.MethodPost, "/debates/init", cfg, &resp, nil); err != nil {
		return "", err
	}
	if resp.DebateID == "" {
		return "", errors.NewAPIError("backend returned empty debate_id", nil).
			WithEndpoint("/debates/init").
			WithRetryable(false)
	}

	c.log.Info("debate initialized", "debate_id", resp.DebateID, "topic", cfg.TopicName)
	return resp.DebateID, nil
}

// NextStep advances a debate by one event.
func (c *HTTPClient) NextStep(ctx context.Context, debateID string) (*StepResponse, error) {
	path := fmt.Sprintf("/debates/%s/next", debateID)

	var resp StepResponse
	if err := c.doJSON(ctx, http.MethodPost, path, nil, &resp, errors.ErrDebateNotFound); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListResults retrieves summaries of all persisted debates.
func (c *HTTPClient) ListResults(ctx context.Context) ([]ResultSummary, error) {
	var resp []ResultSummary
	if err := c.doJSON(ctx, http.MethodGet, "/results", nil, &resp, nil); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetResult retrieves the full record of one persisted debate.
func (c *HTTPClient) GetResult(ctx context.Context, id string) (*ResultDetail, error) {
	var resp ResultDetail
	notFound := errors.NewNotFoundError("result", id)
	if err := c.doJSON(ctx, http.MethodGet, "/results/"+id, nil, &resp, notFound); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListConfigs retrieves summaries of server-side saved configurations.
func (c *HTTPClient) ListConfigs(ctx context.Context) ([]ConfigSummary, error) {
	var resp []ConfigSummary
	if err := c.doJSON(ctx, http.MethodGet, "/configs", nil, &resp, nil); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetConfig retrieves one server-side saved configuration by filename.
func (c *HTTPClient) GetConfig(ctx context.Context, filename string) (*DebateConfig, error) {
	var resp DebateConfig
	notFound := errors.NewNotFoundError("config", filename)
	if err := c.doJSON(ctx, http.MethodGet, "/config/"+filename, nil, &resp, notFound); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health pings the backend.
func (c *HTTPClient) Health(ctx context.Context) error {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, &resp, nil); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return errors.NewAPIError(fmt.Sprintf("backend unhealthy: %s", resp.Status), nil).WithEndpoint("/health")
	}
	return nil
}

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)
