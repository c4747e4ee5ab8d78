// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"fmt"
	"os"

	"github.com/RafaelrainBR/minecraft-launcher/internal/archive"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// ExtractNatives unpacks every native library into the natives directory of the version and returns that directory.
// Libraries are fetched first, which is a cache hit after ResolveLibraries.
func ExtractNatives(ctx context.Context, o *globals.GlobalOpts, id string, libs []version.ResolvedLibrary) (string, error) {
	dir := o.NativesDir(id)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("unable to create directory %q: %w", dir, err)
	}

	logger := o.Log().Named("natives")
	for i := range libs {
		l := &libs[i]
		if !l.Native {
			continue
		}
		r, err := libraryRequest(o, l)
		if err != nil {
			return "", err
		}
		if _, err = o.Cache().Fetch(ctx, r); err != nil {
			return "", err
		}
		logger.Debug("extracting", "library", l.Name, "dir", dir)
		if err = archive.Unzip(dir, r.Path, l.Exclude); err != nil {
			return "", fmt.Errorf("%w %s: %w", ErrExtract, l.Name, err)
		}
	}
	return dir, nil
}
