// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"fmt"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// LoadManifest returns the version index, downloading it from GlobalOpts.ManifestURL if it isn't cached.
func LoadManifest(ctx context.Context, o *globals.GlobalOpts) (*version.Manifest, error) {
	m := &version.Manifest{}
	if err := o.Cache().FetchJSON(ctx, cache.Request{Path: o.VersionManifestFile(), URL: o.ManifestURL}, m); err != nil {
		return nil, err
	}
	return m, nil
}

// FindVersion is like version.Manifest Find, except no match is ErrVersionNotFound.
func FindVersion(m *version.Manifest, id string) (version.ManifestVersion, error) {
	if v, ok := m.Find(id); ok {
		return v, nil
	}
	return version.ManifestVersion{}, fmt.Errorf("%w: %s", ErrVersionNotFound, id)
}

// LoadDescriptor returns the descriptor of the version, downloading it if it isn't cached.
func LoadDescriptor(ctx context.Context, o *globals.GlobalOpts, v version.ManifestVersion) (*version.Descriptor, error) {
	d := &version.Descriptor{}
	r := cache.Request{Path: o.DescriptorFile(v.ID), URL: v.URL, SHA1: v.SHA1}
	if err := o.Cache().FetchJSON(ctx, r, d); err != nil {
		return nil, err
	}
	return d, nil
}

// DownloadClient downloads the client archive of the version and returns its path.
func DownloadClient(ctx context.Context, o *globals.GlobalOpts, d *version.Descriptor) (string, error) {
	a, ok := d.ClientArtifact()
	if !ok {
		return "", fmt.Errorf("%w: %s has no client download", ErrArtifactMissing, d.ID)
	}
	path := o.ClientFile(d.ID)
	if _, err := o.Cache().Fetch(ctx, cache.Request{Path: path, URL: a.URL, SHA1: a.SHA1, Size: a.Size}); err != nil {
		return "", err
	}
	return path, nil
}

// DownloadLoggingConfig downloads the client logging configuration of the version and returns its path, or "" if the
// version has none.
func DownloadLoggingConfig(ctx context.Context, o *globals.GlobalOpts, d *version.Descriptor) (string, error) {
	if d.Logging == nil || d.Logging.Client == nil || d.Logging.Client.File.URL == "" {
		return "", nil
	}
	f := d.Logging.Client.File
	path := o.LogConfigFile(f.ID)
	if _, err := o.Cache().Fetch(ctx, cache.Request{Path: path, URL: f.URL, SHA1: f.SHA1, Size: f.Size}); err != nil {
		return "", err
	}
	return path, nil
}
