package api

import (
	"context"
	"sync"

	"github.com/debaite/podium/internal/errors"
)

// MockClient is an in-memory backend for tests and offline use. Step
// events are replayed from a scripted sequence; the last scripted step
// reports finished.
type MockClient struct {
	mu sync.Mutex

	checkResponse *CheckStatusResponse
	checkErr      error

	debateID string
	initErr  error

	steps   []StepResponse
	stepIdx int
	stepErr error

	results    []ResultSummary
	resultsErr error

	details   map[string]*ResultDetail
	detailErr error

	configs    []ConfigSummary
	configByID map[string]*DebateConfig

	healthErr error

	// Calls records every invoked operation name, in order.
	Calls []string
}

// MockOption configures the mock client.
type MockOption func(*MockClient)

// WithCheckResponse sets the credential-check result.
func WithCheckResponse(resp CheckStatusResponse) MockOption {
	return func(m *MockClient) {
		m.checkResponse = &resp
	}
}

// WithCheckError sets an error to return from CheckProviderStatus.
func WithCheckError(err error) MockOption {
	return func(m *MockClient) {
		m.checkErr = err
	}
}

// WithDebateID sets the identifier returned by InitDebate.
func WithDebateID(id string) MockOption {
	return func(m *MockClient) {
		m.debateID = id
	}
}

// WithInitError sets an error to return from InitDebate.
func WithInitError(err error) MockOption {
	return func(m *MockClient) {
		m.initErr = err
	}
}

// WithSteps scripts the sequence of step responses.
func WithSteps(steps ...StepResponse) MockOption {
	return func(m *MockClient) {
		m.steps = steps
	}
}

// WithStepError sets an error to return from NextStep.
func WithStepError(err error) MockOption {
	return func(m *MockClient) {
		m.stepErr = err
	}
}

// WithResults sets the result summaries to return.
func WithResults(results []ResultSummary) MockOption {
	return func(m *MockClient) {
		m.results = results
	}
}

// WithResultsError sets an error to return from ListResults.
func WithResultsError(err error) MockOption {
	return func(m *MockClient) {
		m.resultsErr = err
	}
}

// WithDetail registers a result detail by ID.
func WithDetail(id string, detail *ResultDetail) MockOption {
	return func(m *MockClient) {
		m.details[id] = detail
	}
}

// WithDetailError sets an error to return from GetResult.
func WithDetailError(err error) MockOption {
	return func(m *MockClient) {
		m.detailErr = err
	}
}

// WithConfigs sets the server-side config summaries to return.
func WithConfigs(configs []ConfigSummary) MockOption {
	return func(m *MockClient) {
		m.configs = configs
	}
}

// WithConfig registers a server-side config by filename.
func WithConfig(filename string, cfg *DebateConfig) MockOption {
	return func(m *MockClient) {
		m.configByID[filename] = cfg
	}
}

// WithHealthError sets an error to return from Health.
func WithHealthError(err error) MockOption {
	return func(m *MockClient) {
		m.healthErr = err
	}
}

// NewMockClient creates a mock with the given options applied.
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{
		debateID:   "mock-debate",
		details:    make(map[string]*ResultDetail),
		configByID: make(map[string]*DebateConfig),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MockClient) record(call string) {
	m.Calls = append(m.Calls, call)
}

// CheckProviderStatus verifies one provider credential.
func (m *MockClient) CheckProviderStatus(_ context.Context, req CheckStatusRequest) (*CheckStatusResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("CheckProviderStatus")

	if req.APIKey == "" {
		return nil, errors.ErrProviderKeyMissing
	}
	if m.checkErr != nil {
		return nil, m.checkErr
	}
	if m.checkResponse != nil {
		resp := *m.checkResponse
		return &resp, nil
	}
	return &CheckStatusResponse{Status: StatusVerified}, nil
}

// InitDebate returns the scripted debate identifier.
func (m *MockClient) InitDebate(_ context.Context, _ DebateConfig) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("InitDebate")

	if m.initErr != nil {
		return "", m.initErr
	}
	return m.debateID, nil
}

// NextStep replays the scripted step sequence. Once exhausted it keeps
// reporting finished with no event, matching a drained backend generator.
func (m *MockClient) NextStep(_ context.Context, _ string) (*StepResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("NextStep")

	if m.stepErr != nil {
		return nil, m.stepErr
	}
	if m.stepIdx >= len(m.steps) {
		return &StepResponse{Finished: true}, nil
	}
	step := m.steps[m.stepIdx]
	m.stepIdx++
	return &step, nil
}

// ListResults returns the scripted summaries.
func (m *MockClient) ListResults(_ context.Context) ([]ResultSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListResults")

	if m.resultsErr != nil {
		return nil, m.resultsErr
	}
	return m.results, nil
}

// GetResult returns a registered detail or a NotFoundError.
func (m *MockClient) GetResult(_ context.Context, id string) (*ResultDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetResult:" + id)

	if m.detailErr != nil {
		return nil, m.detailErr
	}
	if detail, ok := m.details[id]; ok {
		return detail, nil
	}
	return nil, errors.NewNotFoundError("result", id)
}

// ListConfigs returns the scripted config summaries.
func (m *MockClient) ListConfigs(_ context.Context) ([]ConfigSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("ListConfigs")
	return m.configs, nil
}

// GetConfig returns a registered config or a NotFoundError.
func (m *MockClient) GetConfig(_ context.Context, filename string) (*DebateConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("GetConfig:" + filename)

	if cfg, ok := m.configByID[filename]; ok {
		return cfg, nil
	}
	return nil, errors.NewNotFoundError("config", filename)
}

// Health reports the scripted health state.
func (m *MockClient) Health(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.record("Health")
	return m.healthErr
}

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)
