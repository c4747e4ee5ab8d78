// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/RafaelrainBR/minecraft-launcher/internal/archive"
	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// SelectRuntimeManifest returns the reference to the manifest of the first build of the runtime component for
// GlobalOpts.Platform, downloading the runtime index if it isn't cached.
func SelectRuntimeManifest(ctx context.Context, o *globals.GlobalOpts, component string) (version.RuntimeManifestRef, error) {
	index := &version.RuntimeIndex{}
	if err := o.Cache().FetchJSON(ctx, cache.Request{Path: o.RuntimeIndexFile(), URL: o.RuntimesURL}, index); err != nil {
		return version.RuntimeManifestRef{}, err
	}
	return index.Select(component, o.Platform)
}

// DownloadRuntime downloads every file of the runtime manifest into the directory of the component and returns the
// path to its Java executable.
//
// Directory entries are implied by the files in them. Link entries are created after files, except on Windows where
// they are skipped.
func DownloadRuntime(ctx context.Context, o *globals.GlobalOpts, component string, ref version.RuntimeManifestRef) (string, error) {
	m := &version.RuntimeManifest{}
	r := cache.Request{Path: o.RuntimeManifestFile(component), URL: ref.URL, SHA1: ref.SHA1, Size: ref.Size}
	if err := o.Cache().FetchJSON(ctx, r, m); err != nil {
		return "", err
	}

	dir := o.RuntimeDir(component)
	var requests []cache.Request
	var links []string
	for _, name := range m.Paths() {
		f := m.Files[name]
		switch f.Type {
		case version.File:
			if f.Downloads == nil {
				continue // nothing to download
			}
			path, err := runtimePath(dir, name)
			if err != nil {
				return "", err
			}
			requests = append(requests, runtimeRequest(o, path, f))
		case version.Link:
			links = append(links, name)
		}
	}

	o.Log().Named("runtime").Debug("downloading runtime", "component", component, "files", len(requests))
	if err := fetchAll(ctx, o, requests); err != nil {
		return "", err
	}
	if o.Platform.OS != platform.Windows {
		for _, name := range links {
			if err := createLink(dir, name, m.Files[name].Target); err != nil {
				return "", err
			}
		}
	}
	return filepath.Join(dir, filepath.FromSlash(o.Platform.JavaExecutable())), nil
}

func runtimePath(dir, name string) (string, error) {
	segments, err := version.SplitPath(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{dir}, segments...)...), nil
}

func runtimeRequest(o *globals.GlobalOpts, path string, f version.RuntimeFile) cache.Request {
	raw := f.Downloads.Raw
	r := cache.Request{Path: path, URL: raw.URL, SHA1: raw.SHA1, Size: raw.Size, Mode: 0o644}
	if f.Executable {
		r.Mode = 0o755
	}
	if lzma := f.Downloads.LZMA; o.PreferCompressed && lzma != nil && lzma.URL != "" {
		r.URL = lzma.URL
		r.Decode = archive.DecodeLZMA // checksums are of the raw file
	}
	return r
}

// createLink creates the symbolic link unless something already exists at its path.
func createLink(dir, name, target string) error {
	path, err := runtimePath(dir, name)
	if err != nil {
		return err
	}
	if _, err = os.Lstat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	if err = os.Symlink(filepath.FromSlash(target), path); err != nil {
		return fmt.Errorf("unable to link %s: %w", name, err)
	}
	return nil
}
