// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
)

func runtimeTable(url string) RuntimeTable {
	return RuntimeTable{"java-runtime-gamma": []RuntimeEntry{
		{Manifest: RuntimeManifestRef{URL: url}, Version: RuntimeVersion{Name: "17.0.8"}},
		{Manifest: RuntimeManifestRef{URL: url + "-second"}},
	}}
}

func TestRuntimeIndex_Select(t *testing.T) {
	i := &RuntimeIndex{
		Linux:        runtimeTable("linux"),
		LinuxI386:    runtimeTable("linux-i386"),
		MacOS:        runtimeTable("mac-os"),
		MacOSArm64:   runtimeTable("mac-os-arm64"),
		WindowsArm64: runtimeTable("windows-arm64"),
		WindowsX64:   runtimeTable("windows-x64"),
		WindowsX86:   runtimeTable("windows-x86"),
	}

	tests := []struct {
		platform    platform.Platform
		expectedURL string
	}{
		{platform.Platform{OS: platform.Windows, Arch: platform.X86}, "windows-x86"},
		{platform.Platform{OS: platform.Windows, Arch: platform.X86_64}, "windows-x64"},
		{platform.Platform{OS: platform.Windows, Arch: platform.Arm}, "windows-arm64"},
		{platform.Platform{OS: platform.Linux, Arch: platform.X86}, "linux-i386"},
		{platform.Platform{OS: platform.Linux, Arch: platform.X86_64}, "linux"},
		{platform.Platform{OS: platform.Linux, Arch: platform.Arm}, "linux"},
		{platform.Platform{OS: platform.Linux, Arch: platform.Aarch64}, "linux"},
		{platform.Platform{OS: platform.MacOS, Arch: platform.X86_64}, "mac-os"},
		{platform.Platform{OS: platform.MacOS, Arch: platform.Arm}, "mac-os-arm64"},
		{platform.Platform{OS: platform.MacOS, Arch: platform.Aarch64}, "mac-os-arm64"},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.platform.String(), func(t *testing.T) {
			ref, err := i.Select("java-runtime-gamma", tc.platform)
			require.NoError(t, err)
			require.Equal(t, tc.expectedURL, ref.URL)
		})
	}
}

func TestRuntimeIndex_Select_WindowsAarch64(t *testing.T) {
	i := &RuntimeIndex{WindowsArm64: runtimeTable("windows-arm64")}

	_, err := i.Select("java-runtime-gamma", platform.Platform{OS: platform.Windows, Arch: platform.Aarch64})
	require.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
	require.False(t, errors.Is(err, ErrRuntimeNotFound))
	require.EqualError(t, err, "unsupported platform: no Java runtime is published for windows/arm64")
}

func TestRuntimeIndex_Select_NotFound(t *testing.T) {
	i := &RuntimeIndex{
		Linux:     runtimeTable("linux"),
		LinuxI386: RuntimeTable{"java-runtime-gamma": nil},
	}

	_, err := i.Select("jre-legacy", platform.Platform{OS: platform.Linux, Arch: platform.X86_64})
	require.ErrorIs(t, err, ErrRuntimeNotFound)
	require.EqualError(t, err, "runtime not found: jre-legacy for linux/amd64")

	_, err = i.Select("java-runtime-gamma", platform.Platform{OS: platform.Linux, Arch: platform.X86})
	require.ErrorIs(t, err, ErrRuntimeNotFound)

	_, err = i.Select("java-runtime-gamma", platform.Platform{OS: platform.MacOS, Arch: platform.X86_64})
	require.ErrorIs(t, err, ErrRuntimeNotFound)
}

func TestRuntimeIndex_UnmarshalJSON(t *testing.T) {
	var i RuntimeIndex
	require.NoError(t, json.Unmarshal([]byte(`{
  "gamecore": {},
  "linux": {"java-runtime-gamma": [{
    "availability": {"group": 1, "progress": 100},
    "manifest": {"sha1": "abc", "size": 123, "url": "https://piston-meta.mojang.com/v1/packages/abc/manifest.json"},
    "version": {"name": "17.0.8", "released": "2023-08-03T13:27:44+00:00"}
  }]},
  "linux-i386": {}, "mac-os": {}, "mac-os-arm64": {}, "windows-arm64": {}, "windows-x64": {}, "windows-x86": {}
}`), &i))

	ref, err := i.Select("java-runtime-gamma", platform.Platform{OS: platform.Linux, Arch: platform.X86_64})
	require.NoError(t, err)
	require.Equal(t, RuntimeManifestRef{SHA1: "abc", Size: 123, URL: "https://piston-meta.mojang.com/v1/packages/abc/manifest.json"}, ref)
}

func TestRuntimeManifest_UnmarshalJSON(t *testing.T) {
	var m RuntimeManifest
	require.NoError(t, json.Unmarshal([]byte(`{"files": {
  "bin": {"type": "directory"},
  "bin/java": {"type": "file", "executable": true, "downloads": {
    "lzma": {"sha1": "a", "size": 1, "url": "https://launcher.mojang.com/v1/objects/a/java"},
    "raw": {"sha1": "b", "size": 2, "url": "https://launcher.mojang.com/v1/objects/b/java"}
  }},
  "legal/java.base/LICENSE": {"type": "link", "target": "../java.desktop/LICENSE"}
}}`), &m))

	require.Equal(t, []string{"bin", "bin/java", "legal/java.base/LICENSE"}, m.Paths())
	require.Equal(t, RuntimeFile{Type: Directory}, m.Files["bin"])
	java := m.Files["bin/java"]
	require.Equal(t, File, java.Type)
	require.True(t, java.Executable)
	require.Equal(t, "https://launcher.mojang.com/v1/objects/b/java", java.Downloads.Raw.URL)
	require.Equal(t, "https://launcher.mojang.com/v1/objects/a/java", java.Downloads.LZMA.URL)
	require.Equal(t, RuntimeFile{Type: Link, Target: "../java.desktop/LICENSE"}, m.Files["legal/java.base/LICENSE"])
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		expected []string
	}{
		{"release", []string{"release"}},
		{"bin/java", []string{"bin", "java"}},
		{"lib/server/libjvm.so", []string{"lib", "server", "libjvm.so"}},
		{"bin//java", []string{"bin", "java"}},
	}

	for _, tt := range tests {
		tc := tt
		t.Run(tc.name, func(t *testing.T) {
			actual, err := SplitPath(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}

	for _, invalid := range []string{"", ".", "..", "../bin/java", "/bin/java"} {
		_, err := SplitPath(invalid)
		require.EqualError(t, err, `invalid runtime path "`+invalid+`"`)
	}
}
