// Package testutil provides testing utilities for podium tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Backend is a scripted Debaite backend served over httptest. Tests
// set its fields before issuing requests; every mutator is safe to use
// from handler goroutines.
type Backend struct {
	t  *testing.T
	mu sync.Mutex

	// CheckStatus is returned by /providers/check_status.
	CheckStatus string
	// DebateID is returned by /debates/init.
	DebateID string
	// Events are raw JSON events served one per /next call; after the
	// last one the backend reports finished.
	Events []string
	// ResultsJSON is the raw body of GET /results.
	ResultsJSON string
	// DetailJSON maps result ids to raw GET /results/{id} bodies.
	DetailJSON map[string]string
	// ConfigsJSON is the raw body of GET /configs.
	ConfigsJSON string
	// ConfigJSON maps filenames to raw GET /config/{filename} bodies.
	ConfigJSON map[string]string
	// Healthy controls GET /health.
	Healthy bool

	stepIdx   int
	initCount int
	// InitBodies collects the raw configuration payloads sent to init.
	InitBodies []json.RawMessage

	Server *httptest.Server
}

// NewBackend starts a scripted backend. It is shut down automatically
// when the test completes.
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		t:           t,
		CheckStatus: "verified",
		DebateID:    "debate-test-1",
		ResultsJSON: "[]",
		DetailJSON:  make(map[string]string),
		ConfigsJSON: "[]",
		ConfigJSON:  make(map[string]string),
		Healthy:     true,
	}
	b.Server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.Server.Close)
	return b
}

// URL returns the backend base URL.
func (b *Backend) URL() string { return b.Server.URL }

// InitCount reports how many debates were initialized.
func (b *Backend) InitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.initCount
}

func (b *Backend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case r.URL.Path == "/health":
		if !b.Healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"status":"down"}`)
			return
		}
		fmt.Fprint(w, `{"status":"ok"}`)

	case r.URL.Path == "/providers/check_status" && r.Method == http.MethodPost:
		fmt.Fprintf(w, `{"status":%q,"latency":0.05,"message":""}`, b.CheckStatus)

	case r.URL.Path == "/debates/init" && r.Method == http.MethodPost:
		var body json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b.InitBodies = append(b.InitBodies, body)
		b.initCount++
		b.stepIdx = 0
		fmt.Fprintf(w, `{"debate_id":%q}`, b.DebateID)

	case strings.HasPrefix(r.URL.Path, "/debates/") && strings.HasSuffix(r.URL.Path, "/next"):
		if b.stepIdx >= len(b.Events) {
			fmt.Fprint(w, `{"event":null,"finished":true}`)
			return
		}
		event := b.Events[b.stepIdx]
		b.stepIdx++
		finished := b.stepIdx >= len(b.Events)
		fmt.Fprintf(w, `{"event":%s,"finished":%v}`, event, finished)

	case r.URL.Path == "/results":
		fmt.Fprint(w, b.ResultsJSON)

	case r.URL.Path == "/configs":
		fmt.Fprint(w, b.ConfigsJSON)

	case strings.HasPrefix(r.URL.Path, "/config/"):
		name := strings.TrimPrefix(r.URL.Path, "/config/")
		cfg, ok := b.ConfigJSON[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail":"config not found"}`)
			return
		}
		fmt.Fprint(w, cfg)

	case strings.HasPrefix(r.URL.Path, "/results/"):
		id := strings.TrimPrefix(r.URL.Path, "/results/")
		detail, ok := b.DetailJSON[id]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"detail":"result not found"}`)
			return
		}
		fmt.Fprint(w, detail)

	default:
		b.t.Logf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}
}
