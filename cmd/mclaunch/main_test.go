// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	homeDir := t.TempDir()

	tests := []struct {
		name           string
		args           []string
		expectedStatus int
		expectedStdout string
		expectedStderr string
	}{
		{
			name: "built-in --version output",
			args: []string{"mclaunch", "--version"},
			expectedStdout: `mclaunch version dev
`,
		},
		{
			name:           "incorrect global flag name",
			args:           []string{"mclaunch", "--d"},
			expectedStatus: 1,
			expectedStderr: `flag provided but not defined: -d
show usage with: mclaunch help
`,
		},
		{
			name:           "incorrect global flag value",
			args:           []string{"mclaunch", "--manifest-url", ".", "versions"},
			expectedStatus: 1,
			expectedStderr: `"." is not a valid manifest URL
show usage with: mclaunch help
`,
		},
		{
			name:           "unknown command",
			args:           []string{"mclaunch", "--home-dir", homeDir, "fly"},
			expectedStatus: 1,
			expectedStderr: `unknown command "fly"
show usage with: mclaunch help
`,
		},
		{
			name:           "missing argument",
			args:           []string{"mclaunch", "--home-dir", homeDir, "install"},
			expectedStatus: 1,
			expectedStderr: `missing <version> argument
show usage with: mclaunch help
`,
		},
		{
			name:           "execution error",
			args:           []string{"mclaunch", "--home-dir", homeDir, "--log-level", "off", "--manifest-url", server.URL, "versions"},
			expectedStatus: 1,
			expectedStderr: `error: error unmarshalling ` + filepath.Join(homeDir, "versions", "version_manifest.json") + `: unexpected end of JSON input
`,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			stdout := new(bytes.Buffer)
			stderr := new(bytes.Buffer)

			status := run(stdout, stderr, tc.args)
			require.Equal(t, tc.expectedStatus, status)
			require.Equal(t, tc.expectedStdout, stdout.String())
			require.Equal(t, tc.expectedStderr, stderr.String())
		})
	}
}
