// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
)

// ErrLibraryNotFound is returned when a library that applies to the platform has nothing to download.
var ErrLibraryNotFound = errors.New("library artifact not found")

// ResolvedLibrary is a Library which passed rule evaluation for a platform.
type ResolvedLibrary struct {
	Name string
	SHA1 string
	Size int64
	URL  string
	// Native is true when the artifact is a native classifier, which is extracted instead of added to the classpath.
	Native bool
	// Exclude are archive path prefixes not extracted. Only set when Native.
	Exclude []string
}

// Path returns the slash-separated cache path of this library: the URL path after the host.
// Ex. "https://libraries.minecraft.net/org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1.jar" -> "org/lwjgl/lwjgl/3.3.1/lwjgl-3.3.1.jar"
func (l *ResolvedLibrary) Path() (string, error) {
	u, err := url.Parse(l.URL)
	if err != nil {
		return "", fmt.Errorf("invalid URL of library %s: %w", l.Name, err)
	}
	p := strings.TrimPrefix(u.Path, "/")
	if p == "" || u.Host == "" {
		return "", fmt.Errorf("invalid URL of library %s: %q has no path after the host", l.Name, l.URL)
	}
	for _, s := range strings.Split(p, "/") {
		if s == ".." {
			return "", fmt.Errorf("invalid URL of library %s: %q escapes the libraries directory", l.Name, l.URL)
		}
	}
	return p, nil
}

// SelectLibraries returns the libraries that apply to the platform, in declaration order.
//
// A library with rules applies only if any rule allows it. A library applies as native when its Natives has an entry
// for the platform; the entry's "${arch}" is replaced with the platform bits and the result must name one of its
// classifiers. Otherwise, its artifact is used.
func SelectLibraries(libraries []Library, p platform.Platform) ([]ResolvedLibrary, error) {
	result := make([]ResolvedLibrary, 0, len(libraries))
	for i := range libraries {
		l := &libraries[i]
		if !Allowed(l.Rules, p) {
			continue
		}
		r, err := resolve(l, p)
		if err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, nil
}

// Allowed returns true when rules are empty or any rule allows the platform.
//
// Note: "disallow" rules are never evaluated, so they cannot remove a library another rule allows.
func Allowed(rules []Rule, p platform.Platform) bool {
	if len(rules) == 0 {
		return true
	}
	for _, r := range rules {
		if r.allows(p) {
			return true
		}
	}
	return false
}

func (r Rule) allows(p platform.Platform) bool {
	if r.Action != Allow {
		return false
	}
	if r.OS == nil {
		return true
	}
	return r.OS.Name == p.NativeID() // an OS constraint without a name never matches
}

func resolve(l *Library, p platform.Platform) (ResolvedLibrary, error) {
	if template, ok := l.Natives[p.NativeID()]; ok {
		classifier := template
		if bits, ok := p.ArchBits(); ok {
			classifier = strings.ReplaceAll(template, "${arch}", bits)
		}
		a, ok := l.Downloads.Classifiers[classifier]
		if !ok {
			return ResolvedLibrary{}, fmt.Errorf("%w: %s has no classifier %q", ErrLibraryNotFound, l.Name, classifier)
		}
		r := ResolvedLibrary{Name: l.Name, SHA1: a.SHA1, Size: a.Size, URL: a.URL, Native: true}
		if l.Extract != nil {
			r.Exclude = l.Extract.Exclude
		}
		return r, nil
	}

	a := l.Downloads.Artifact
	if a == nil {
		return ResolvedLibrary{}, fmt.Errorf("%w: %s", ErrLibraryNotFound, l.Name)
	}
	return ResolvedLibrary{Name: l.Name, SHA1: a.SHA1, Size: a.Size, URL: a.URL}, nil
}
