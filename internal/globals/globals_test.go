// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package globals

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
)

func TestGlobalOpts_Mkdirs(t *testing.T) {
	testCases := []struct {
		name         string
		initialDirs  map[string]fs.FileMode // directories to create before calling Mkdirs
		expectedDirs map[string]fs.FileMode // directories that should exist with correct perms after Mkdirs
	}{
		{
			name:        "creates every base directory",
			initialDirs: map[string]fs.FileMode{},
			expectedDirs: map[string]fs.FileMode{
				"versions":       0o750,
				"libraries":      0o750,
				"assets":         0o750,
				"assets/indexes": 0o750,
				"assets/objects": 0o750,
				"game":           0o750,
			},
		},
		{
			name: "creates missing directories when some exist",
			initialDirs: map[string]fs.FileMode{
				"versions": 0o755,
				"assets":   0o755,
			},
			expectedDirs: map[string]fs.FileMode{
				"versions":       0o755, // existing directories are left alone
				"assets/indexes": 0o750,
				"game":           0o750,
			},
		},
	}

	for _, tt := range testCases {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			o := &GlobalOpts{HomeDir: t.TempDir()}
			for dir, perm := range tc.initialDirs {
				require.NoError(t, os.MkdirAll(filepath.Join(o.HomeDir, dir), perm))
			}

			require.NoError(t, o.Mkdirs())

			for dir, expectedPerm := range tc.expectedDirs {
				info, err := os.Stat(filepath.Join(o.HomeDir, dir))
				require.NoError(t, err, "directory %q should exist", dir)
				require.True(t, info.IsDir())
				require.Equal(t, expectedPerm, info.Mode().Perm(), "directory %q", dir)
			}
			require.NoDirExists(t, o.RuntimesDir(), "runtimes are created on download")

			require.NoError(t, o.Mkdirs(), "Mkdirs should be idempotent")
		})
	}
}

func TestGlobalOpts_Mkdirs_Error(t *testing.T) {
	o := &GlobalOpts{HomeDir: filepath.Join(t.TempDir(), "file")}
	require.NoError(t, os.WriteFile(o.HomeDir, []byte{}, 0o600))

	err := o.Mkdirs()
	require.Error(t, err)
	require.Contains(t, err.Error(), `unable to create directory "`+o.VersionsDir()+`"`)
}

func TestGlobalOpts_UserAgent(t *testing.T) {
	tests := []struct {
		name, version, expected string
	}{
		{name: "unset", expected: "mclaunch/dev"},
		{name: "dev", version: "dev", expected: "mclaunch/dev"},
		{name: "release", version: "1.0.0", expected: "mclaunch/1.0.0 (linux/amd64)"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			o := &GlobalOpts{Version: tc.version, Platform: platform.Platform{OS: platform.Linux, Arch: platform.X86_64}}
			require.Equal(t, tc.expected, o.UserAgent())
		})
	}
}

func TestGlobalOpts_Log(t *testing.T) {
	require.NotNil(t, (&GlobalOpts{}).Log(), "null logger when unset")

	logger := hclog.NewNullLogger()
	require.Same(t, logger, (&GlobalOpts{Logger: logger}).Log())
}

func TestGlobalOpts_Cache(t *testing.T) {
	o := &GlobalOpts{}

	var wg sync.WaitGroup
	caches := make(chan *cache.Cache, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			caches <- o.Cache()
		}()
	}
	wg.Wait()
	close(caches)

	first := o.Cache()
	require.NotNil(t, first)
	for c := range caches {
		require.Same(t, first, c)
	}
}
