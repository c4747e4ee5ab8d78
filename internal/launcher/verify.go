// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// Verify checks every cached artifact of the version against its declared SHA-1 sum and size. Nothing is downloaded:
// missing files are reported like corrupt ones. The result is nil or a *multierror.Error listing every problem.
func Verify(o *globals.GlobalOpts, v version.ManifestVersion) error {
	descriptorFile := o.DescriptorFile(v.ID)
	if _, err := os.Stat(descriptorFile); err != nil {
		return fmt.Errorf("%w: %s", ErrNotInstalled, v.ID)
	}

	var result *multierror.Error
	check := func(path, sha1Sum string, size int64) {
		if err := cache.VerifyFile(path, sha1Sum, size); errors.Is(err, cache.ErrChecksumMismatch) {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		} else if err != nil {
			result = multierror.Append(result, err)
		}
	}

	check(descriptorFile, v.SHA1, 0)
	d := &version.Descriptor{}
	if err := readJSON(descriptorFile, d); err != nil {
		return multierror.Append(result, err).ErrorOrNil()
	}

	if a, ok := d.ClientArtifact(); ok {
		check(o.ClientFile(d.ID), a.SHA1, a.Size)
	}
	if d.Logging != nil && d.Logging.Client != nil && d.Logging.Client.File.URL != "" {
		f := d.Logging.Client.File
		check(o.LogConfigFile(f.ID), f.SHA1, f.Size)
	}

	libs, err := version.SelectLibraries(d.Libraries, o.Platform)
	if err != nil {
		result = multierror.Append(result, err)
	}
	for i := range libs {
		path, err := LibraryFile(o, &libs[i])
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		check(path, libs[i].SHA1, libs[i].Size)
	}

	if err = verifyAssets(o, d, check); err != nil {
		result = multierror.Append(result, err)
	}
	if err = verifyRuntime(o, d.JavaVersion.Component, check); err != nil {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

type checkFunc func(path, sha1Sum string, size int64)

func verifyAssets(o *globals.GlobalOpts, d *version.Descriptor, check checkFunc) error {
	indexFile := o.AssetIndexFile(assetIndexID(d))
	check(indexFile, d.AssetIndex.SHA1, d.AssetIndex.Size)
	index := &version.AssetIndex{}
	if err := readJSON(indexFile, index); err != nil {
		return ignoreNotExist(err) // reported by check
	}

	names := make([]string, 0, len(index.Objects))
	for name := range index.Objects {
		names = append(names, name)
	}
	sort.Strings(names)
	seen := map[string]struct{}{}
	for _, name := range names {
		obj := index.Objects[name]
		if err := obj.Validate(); err != nil {
			return err
		}
		if _, ok := seen[obj.Hash]; ok {
			continue
		}
		seen[obj.Hash] = struct{}{}
		check(obj.Path(o.AssetObjectsDir()), obj.Hash, obj.Size)
	}
	return nil
}

func verifyRuntime(o *globals.GlobalOpts, component string, check checkFunc) error {
	index := &version.RuntimeIndex{}
	if err := readJSON(o.RuntimeIndexFile(), index); err != nil {
		return err
	}
	ref, err := index.Select(component, o.Platform)
	if err != nil {
		return err
	}
	manifestFile := o.RuntimeManifestFile(component)
	check(manifestFile, ref.SHA1, ref.Size)
	m := &version.RuntimeManifest{}
	if err = readJSON(manifestFile, m); err != nil {
		return ignoreNotExist(err) // reported by check
	}

	dir := o.RuntimeDir(component)
	for _, name := range m.Paths() {
		f := m.Files[name]
		if f.Type != version.File || f.Downloads == nil {
			continue
		}
		path, err := runtimePath(dir, name)
		if err != nil {
			return err
		}
		check(path, f.Downloads.Raw.SHA1, f.Downloads.Raw.Size)
	}
	return nil
}

func ignoreNotExist(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func readJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error unmarshalling %s: %w", path, err)
	}
	return nil
}
