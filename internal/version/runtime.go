// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
)

// ErrRuntimeNotFound is returned when the runtime index has no build of a component for the platform.
var ErrRuntimeNotFound = errors.New("runtime not found")

// RuntimeIndex lists the Java runtime builds per platform. Each table maps a component name
// (ex. "java-runtime-gamma") to candidate builds, of which the first is used.
type RuntimeIndex struct {
	Linux        RuntimeTable `json:"linux"`
	LinuxI386    RuntimeTable `json:"linux-i386"`
	MacOS        RuntimeTable `json:"mac-os"`
	MacOSArm64   RuntimeTable `json:"mac-os-arm64"`
	WindowsArm64 RuntimeTable `json:"windows-arm64"`
	WindowsX64   RuntimeTable `json:"windows-x64"`
	WindowsX86   RuntimeTable `json:"windows-x86"`
}

// RuntimeTable is the set of components available for one platform.
type RuntimeTable map[string][]RuntimeEntry

// RuntimeEntry is one build of a component.
type RuntimeEntry struct {
	Availability RuntimeAvailability `json:"availability"`
	Manifest     RuntimeManifestRef  `json:"manifest"`
	Version      RuntimeVersion      `json:"version"`
}

// RuntimeAvailability is the staged rollout of a build.
type RuntimeAvailability struct {
	Group    int `json:"group"`
	Progress int `json:"progress"`
}

// RuntimeManifestRef locates a RuntimeManifest.
type RuntimeManifestRef struct {
	SHA1 string `json:"sha1"`
	Size int64  `json:"size"`
	URL  string `json:"url"`
}

// RuntimeVersion describes a build, ex. {"name":"17.0.8","released":"2023-08-03T13:27:44+00:00"}
type RuntimeVersion struct {
	Name     string `json:"name"`
	Released string `json:"released"`
}

// Table returns the table for the platform. There is no table for Windows on Aarch64.
func (i *RuntimeIndex) Table(p platform.Platform) (RuntimeTable, error) {
	switch p.OS {
	case platform.Windows:
		switch p.Arch {
		case platform.X86:
			return i.WindowsX86, nil
		case platform.X86_64:
			return i.WindowsX64, nil
		case platform.Arm:
			return i.WindowsArm64, nil
		}
	case platform.Linux:
		if p.Arch == platform.X86 {
			return i.LinuxI386, nil
		}
		return i.Linux, nil
	case platform.MacOS:
		if p.Arch == platform.Arm || p.Arch == platform.Aarch64 {
			return i.MacOSArm64, nil
		}
		return i.MacOS, nil
	}
	return nil, fmt.Errorf("%w: no Java runtime is published for %s", platform.ErrUnsupportedPlatform, p)
}

// Select returns the manifest reference of the first build of the component for the platform.
func (i *RuntimeIndex) Select(component string, p platform.Platform) (RuntimeManifestRef, error) {
	t, err := i.Table(p)
	if err != nil {
		return RuntimeManifestRef{}, err
	}
	entries := t[component]
	if len(entries) == 0 {
		return RuntimeManifestRef{}, fmt.Errorf("%w: %s for %s", ErrRuntimeNotFound, component, p)
	}
	return entries[0].Manifest, nil
}

// RuntimeFileType is the kind of a RuntimeFile
type RuntimeFileType string

const (
	File      RuntimeFileType = "file"
	Directory RuntimeFileType = "directory"
	Link      RuntimeFileType = "link"
)

// RuntimeManifest lists every file of a runtime build, keyed by slash-separated relative path.
type RuntimeManifest struct {
	Files map[string]RuntimeFile `json:"files"`
}

// RuntimeFile is an entry of a RuntimeManifest.
type RuntimeFile struct {
	Type RuntimeFileType `json:"type"`
	// Executable is only set on files.
	Executable bool `json:"executable,omitempty"`
	// Downloads is only set on files.
	Downloads *RuntimeDownloads `json:"downloads,omitempty"`
	// Target is only set on links, and is relative to the link's directory.
	Target string `json:"target,omitempty"`
}

// RuntimeDownloads holds the uncompressed and optionally an lzma compressed variant of a file.
type RuntimeDownloads struct {
	LZMA *Artifact `json:"lzma,omitempty"`
	Raw  Artifact  `json:"raw"`
}

// Paths returns the relative paths of the manifest in lexical order, so that the same manifest is always processed the
// same way.
func (m *RuntimeManifest) Paths() []string {
	result := make([]string, 0, len(m.Files))
	for p := range m.Files {
		result = append(result, p)
	}
	sort.Strings(result)
	return result
}

// SplitPath decomposes a slash-separated manifest path into its segments. Paths that would escape the runtime
// directory are rejected.
func SplitPath(name string) ([]string, error) {
	cleaned := path.Clean(name)
	if name == "" || path.IsAbs(cleaned) || cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return nil, fmt.Errorf("invalid runtime path %q", name)
	}
	return strings.Split(cleaned, "/"), nil
}
