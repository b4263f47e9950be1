// Package testutil provides testing utilities for the Pokédex client.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// MockResponse defines the behavior for a mock PokeAPI endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Delay      time.Duration
}

// MockPokeAPI is a configurable mock PokeAPI server for testing.
type MockPokeAPI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	requestCount int
	requestLog   []string
}

// NewMockPokeAPI creates a new mock PokeAPI server.
func NewMockPokeAPI() *MockPokeAPI {
	mock := &MockPokeAPI{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.requestLog = append(mock.requestLog, r.URL.Path)
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		// Unconfigured identifiers behave like the real API: 404.
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found"))
	}))

	return mock
}

// URL returns the mock server URL, usable as the client BaseURL.
func (m *MockPokeAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockPokeAPI) Close() {
	m.server.Close()
}

// Reset clears tracking counters and configured handlers.
func (m *MockPokeAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.requestLog = nil
	m.handlers = make(map[string]func(w http.ResponseWriter, r *http.Request))
}

// SetHandler sets a custom handler for a specific path.
func (m *MockPokeAPI) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockPokeAPI) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPokemonResponse configures the primary entity endpoint for one id.
func (m *MockPokeAPI) SetPokemonResponse(id int, resp MockResponse) {
	m.SetResponse(fmt.Sprintf("/pokemon/%d", id), resp)
}

// SetSpeciesResponse configures the descriptive endpoint for one id.
func (m *MockPokeAPI) SetSpeciesResponse(id int, resp MockResponse) {
	m.SetResponse(fmt.Sprintf("/pokemon-species/%d", id), resp)
}

// SetCreature installs a complete, valid payload pair for one identifier.
func (m *MockPokeAPI) SetCreature(id int, name string, types ...string) {
	m.SetPokemonResponse(id, NewPokemonResponse(id, name, types...))
	m.SetSpeciesResponse(id, NewSpeciesResponse(fmt.Sprintf("%s flavor text.", name)))
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockPokeAPI) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// RequestLog returns the request paths in arrival order.
func (m *MockPokeAPI) RequestLog() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.requestLog...)
}

// NewPokemonResponse creates a valid primary entity payload. Height/weight
// are derived from the id so scaling is observable in tests, and the stat
// block is the standard six-stat set.
func NewPokemonResponse(id int, name string, types ...string) MockResponse {
	if len(types) == 0 {
		types = []string{"normal"}
	}

	slots := make([]string, 0, len(types))
	for i, t := range types {
		slots = append(slots, fmt.Sprintf(`{"slot":%d,"type":{"name":"%s"}}`, i+1, t))
	}

	body := fmt.Sprintf(`{
		"id": %d,
		"name": "%s",
		"height": %d,
		"weight": %d,
		"types": [%s],
		"abilities": [
			{"slot":1,"is_hidden":false,"ability":{"name":"first-ability"}},
			{"slot":3,"is_hidden":true,"ability":{"name":"hidden-ability"}}
		],
		"stats": [
			{"base_stat":35,"stat":{"name":"hp"}},
			{"base_stat":55,"stat":{"name":"attack"}},
			{"base_stat":40,"stat":{"name":"defense"}},
			{"base_stat":50,"stat":{"name":"special-attack"}},
			{"base_stat":50,"stat":{"name":"special-defense"}},
			{"base_stat":90,"stat":{"name":"speed"}}
		],
		"sprites": {
			"front_default": "https://sprites.example/%d.png",
			"other": {"official-artwork": {"front_default": "https://artwork.example/%d.png"}}
		}
	}`, id, name, id, id*10, strings.Join(slots, ","), id, id)

	return MockResponse{StatusCode: http.StatusOK, Body: body}
}

// NewSpeciesResponse creates a descriptive payload with one English entry
// preceded by a non-English one, mirroring the real API's entry ordering.
func NewSpeciesResponse(flavorText string) MockResponse {
	body := fmt.Sprintf(`{
		"flavor_text_entries": [
			{"flavor_text": "texte en français", "language": {"name": "fr"}},
			{"flavor_text": "%s", "language": {"name": "en"}}
		]
	}`, flavorText)

	return MockResponse{StatusCode: http.StatusOK, Body: body}
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "Internal server error"}`,
	}
}

// NewRateLimitResponse creates a 429 Too Many Requests response.
func NewRateLimitResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusTooManyRequests,
		Body:       `{"error": "Rate limit exceeded"}`,
	}
}

// NewMalformedResponse creates a 200 response with a body that is not valid JSON.
func NewMalformedResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       `{"id": 1, "name":`,
	}
}
