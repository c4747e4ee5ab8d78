// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RafaelrainBR/minecraft-launcher/internal/config"
	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
	"github.com/RafaelrainBR/minecraft-launcher/internal/test"
)

func TestBuildCommand(t *testing.T) {
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)
	i := &Installation{
		Descriptor: requireDescriptor(t, o, test.FakeLegacyVersion),
		Classpath:  []string{"/client.jar", "/lib.jar"},
		NativesDir: "/natives",
		JavaPath:   "/runtime/bin/java",
	}
	c := &config.Config{UserName: "Steve", JVMArgs: "-Xmx2G"}

	tests := []struct {
		name     string
		javaPath string
		platform platform.Platform
		expected []string
	}{
		{
			name:     "runtime java",
			platform: linux,
			expected: []string{"/runtime/bin/java", "-Xmx2G", "-Djava.library.path=/natives",
				"-cp", "/client.jar:/lib.jar", test.FakeMainClass,
				"--username", "Steve", "--version", test.FakeLegacyVersion, "--userProperties", UserProperties},
		},
		{
			name:     "java path overrides runtime",
			javaPath: "/usr/bin/java",
			platform: linux,
			expected: []string{"/usr/bin/java", "-Xmx2G", "-Djava.library.path=/natives",
				"-cp", "/client.jar:/lib.jar", test.FakeMainClass,
				"--username", "Steve", "--version", test.FakeLegacyVersion, "--userProperties", UserProperties},
		},
		{
			name:     "windows classpath separator",
			platform: platform.Platform{OS: platform.Windows, Arch: platform.X86_64},
			expected: []string{"/runtime/bin/java", "-Xmx2G", "-Djava.library.path=/natives",
				"-cp", "/client.jar;/lib.jar", test.FakeMainClass,
				"--username", "Steve", "--version", test.FakeLegacyVersion, "--userProperties", UserProperties},
		},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			o.JavaPath = tc.javaPath
			o.Platform = tc.platform
			argv, err := BuildCommand(o, i, c)
			require.NoError(t, err)
			require.Equal(t, tc.expected, argv)
		})
	}
}

func TestBuildCommand_NoVersionSelected(t *testing.T) {
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)

	_, err := BuildCommand(o, nil, config.Default())
	require.ErrorIs(t, err, ErrNoVersionSelected)
	_, err = BuildCommand(o, &Installation{}, config.Default())
	require.ErrorIs(t, err, ErrNoVersionSelected)
}

func TestLaunch(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the fake java is a shell script")
	}
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)
	stdout := new(bytes.Buffer)
	o.GameOut = stdout
	i := requireResolve(t, o, test.FakeVersion)
	c := &config.Config{UserName: "Steve"}

	state, err := Launch(context.Background(), o, i, c)
	require.NoError(t, err)
	require.Equal(t, 0, state.ExitCode())

	argv, err := BuildCommand(o, i, c)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Equal(t, argv[1:], lines[1:])

	cwd := strings.TrimPrefix(lines[0], "cwd=")
	require.Equal(t, requireRealPath(t, o.GameDir()), requireRealPath(t, cwd))
}

func TestLaunch_ExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("the fake java is a shell script")
	}
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)
	o.GameOut = new(bytes.Buffer)
	i := requireResolve(t, o, test.FakeVersion)
	t.Setenv("FAKE_JAVA_EXIT_CODE", "3")

	state, err := Launch(context.Background(), o, i, config.Default())
	require.NoError(t, err, "a game exiting non-zero hasn't failed to launch")
	require.Equal(t, 3, state.ExitCode())
}

func TestLaunch_Errors(t *testing.T) {
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)

	_, err := Launch(context.Background(), o, nil, config.Default())
	require.ErrorIs(t, err, ErrNoVersionSelected)

	i := &Installation{
		Descriptor: requireDescriptor(t, o, test.FakeLegacyVersion),
		JavaPath:   filepath.Join(t.TempDir(), "missing", "java"),
	}
	_, err = Launch(context.Background(), o, i, config.Default())
	require.ErrorIs(t, err, ErrProcess)
	require.Contains(t, err.Error(), "game process error: unable to start "+i.JavaPath+": ")
}

func requireRealPath(t *testing.T, path string) string {
	p, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return p
}
