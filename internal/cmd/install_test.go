// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	rootcmd "github.com/RafaelrainBR/minecraft-launcher/internal/cmd"
	"github.com/RafaelrainBR/minecraft-launcher/internal/launcher"
	"github.com/RafaelrainBR/minecraft-launcher/internal/test"
)

func TestInstall(t *testing.T) {
	o, s := setupTest(t)

	stdout, err := runCommand(o, "install", test.FakeVersion)
	require.NoError(t, err)
	require.Equal(t, "installed 1.20.1\n", stdout)

	require.FileExists(t, o.ClientFile(test.FakeVersion))
	for _, p := range test.FakeLibraryPaths {
		require.FileExists(t, o.LibraryFile(p))
	}
	require.FileExists(t, filepath.Join(o.NativesDir(test.FakeVersion), test.FakeNativeFile))
	require.FileExists(t, filepath.Join(o.RuntimeDir(test.FakeComponent), "bin", "java"))

	t.Run("installing again is only cache hits", func(t *testing.T) {
		before := s.TotalRequests()
		stdout, err := runCommand(o, "install", test.FakeVersion)
		require.NoError(t, err)
		require.Equal(t, "installed 1.20.1\n", stdout)
		require.Equal(t, before, s.TotalRequests())
	})
}

func TestInstall_PreferCompressed(t *testing.T) {
	o, s := setupTest(t)

	_, err := runCommand(o, "--prefer-compressed", "install", test.FakeVersion)
	require.NoError(t, err)
	require.True(t, o.PreferCompressed)
	require.Equal(t, 1, s.Requests("/v1/objects/runtime/bin/java.lzma"))
	require.Zero(t, s.Requests("/v1/objects/runtime/bin/java"))
}

func TestInstall_ValidationErrors(t *testing.T) {
	o, s := setupTest(t)

	tests := []struct {
		name        string
		args        []string
		expectedErr string
	}{
		{
			name:        "missing version",
			args:        []string{"install"},
			expectedErr: "missing <version> argument",
		},
		{
			name:        "too many arguments",
			args:        []string{"install", test.FakeVersion, "extra"},
			expectedErr: `unexpected arguments: ["extra"]`,
		},
		{
			name:        "unknown version",
			args:        []string{"install", "1.0.0"},
			expectedErr: `version not found: 1.0.0. Run "mclaunch versions" to list them`,
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			_, err := runCommand(o, tc.args...)
			require.EqualError(t, err, tc.expectedErr)
			var validationErr *rootcmd.ValidationError
			require.True(t, errors.As(err, &validationErr))
		})
	}
	require.Equal(t, 1, s.TotalRequests(), "only the manifest was downloaded")
}

func TestInstall_ExecutionErrors(t *testing.T) {
	o, _ := setupTest(t)

	_, err := runCommand(o, "install", test.FakeSnapshot)
	require.ErrorIs(t, err, launcher.ErrArtifactMissing)

	_, err = runCommand(o, "install", test.FakeLegacyVersion)
	require.ErrorIs(t, err, launcher.ErrRuntimeNotFound)

	var validationErr *rootcmd.ValidationError
	require.False(t, errors.As(err, &validationErr))
}
