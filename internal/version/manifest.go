// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package version is the data model of the remote version index and the documents it leads to: version
// descriptors, asset indexes and Java runtime indexes. Values here are parsed once and never mutated. Decisions which
// depend on the host, such as which libraries or arguments apply, are pure functions of a platform.Platform.
package version

import (
	"fmt"
	"strings"
)

// Channel is the release channel of a version, serialized as the "type" field.
type Channel string

const (
	Release  Channel = "release"
	Snapshot Channel = "snapshot"
	OldAlpha Channel = "old_alpha"
	OldBeta  Channel = "old_beta"
)

// Channels are all known channels, in the order they are usually displayed.
var Channels = []Channel{Release, Snapshot, OldBeta, OldAlpha}

// ParseChannel returns the Channel named s, ignoring case.
func ParseChannel(s string) (Channel, error) {
	for _, c := range Channels {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid channel %q: should be one of %s", s, channelNames())
}

func channelNames() string {
	names := make([]string, 0, len(Channels))
	for _, c := range Channels {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// Manifest is the top-level version index, ex. version_manifest_v2.json
type Manifest struct {
	Latest   Latest            `json:"latest"`
	Versions []ManifestVersion `json:"versions"`
}

// Latest names the newest version of the main channels.
type Latest struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

// ManifestVersion is one entry of the Manifest. ID is its identity.
type ManifestVersion struct {
	ID   string  `json:"id"`
	Type Channel `json:"type"`
	// URL is where the Descriptor of this version is downloaded from.
	URL         string `json:"url"`
	Time        string `json:"time"`
	ReleaseTime string `json:"releaseTime"`
	// SHA1 is only present in version_manifest_v2.json
	SHA1 string `json:"sha1,omitempty"`
}

// ByChannel returns the versions in the given channel, in manifest order.
func (m *Manifest) ByChannel(c Channel) []ManifestVersion {
	var result []ManifestVersion
	for _, v := range m.Versions {
		if v.Type == c {
			result = append(result, v)
		}
	}
	return result
}

// Find returns the version with the given ID or false if there is none.
func (m *Manifest) Find(id string) (ManifestVersion, bool) {
	for _, v := range m.Versions {
		if v.ID == id {
			return v, true
		}
	}
	return ManifestVersion{}, false
}
