// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package test serves a complete fake distribution over HTTP, so that tests exercise the same code paths as a real
// installation without network access.
package test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	// ManifestPath is the path of the version index.
	ManifestPath = "/mc/game/version_manifest_v2.json"
	// RuntimesPath is the path of the Java runtime index.
	RuntimesPath = "/v1/products/java-runtime/all.json"
	// AssetsPath is the base path of asset objects.
	AssetsPath = "/resources"
)

// Server is an HTTP server serving a fake distribution. It records how many times each path was requested.
type Server struct {
	*httptest.Server
	t *testing.T

	mu       sync.Mutex
	files    map[string][]byte
	status   map[string]int
	requests map[string]int
}

// RequireLauncherTestServer starts a Server which is closed when the test completes.
func RequireLauncherTestServer(t *testing.T) *Server {
	s := &Server{t: t, status: map[string]int{}, requests: map[string]int{}}
	s.Server = httptest.NewServer(s)
	t.Cleanup(s.Close)
	files := requireFakeDistribution(t, s.URL)
	s.mu.Lock()
	s.files = files
	s.mu.Unlock()
	return s
}

// ManifestURL is the value of --manifest-url
func (s *Server) ManifestURL() string {
	return s.URL + ManifestPath
}

// RuntimesURL is the value of --runtimes-url
func (s *Server) RuntimesURL() string {
	return s.URL + RuntimesPath
}

// AssetsURL is the value of --assets-url
func (s *Server) AssetsURL() string {
	return s.URL + AssetsPath
}

// Body returns the content served at path, failing the test if there is none.
func (s *Server) Body(path string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[path]
	require.True(s.t, ok, "nothing is served at %s", path)
	return b
}

// SetStatus makes requests to path fail with the status code. http.StatusOK restores the file.
func (s *Server) SetStatus(path string, statusCode int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if statusCode == http.StatusOK {
		delete(s.status, path)
	} else {
		s.status[path] = statusCode
	}
}

// Requests returns how many times path was requested.
func (s *Server) Requests(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[path]
}

// TotalRequests returns how many requests were made to the server.
func (s *Server) TotalRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, count := range s.requests {
		total += count
	}
	return total
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.requests[r.URL.Path]++
	status, failed := s.status[r.URL.Path]
	body, ok := s.files[r.URL.Path]
	s.mu.Unlock()

	switch {
	case r.Method != http.MethodGet:
		w.WriteHeader(http.StatusMethodNotAllowed)
	case failed:
		w.WriteHeader(status)
	case !ok:
		w.WriteHeader(http.StatusNotFound)
	default:
		w.WriteHeader(http.StatusOK)
		_, err := w.Write(body)
		require.NoError(s.t, err)
	}
}
