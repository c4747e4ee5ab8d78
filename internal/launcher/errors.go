// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"errors"

	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

var (
	// ErrVersionNotFound is returned when the manifest has no version with the requested ID.
	ErrVersionNotFound = errors.New("version not found")
	// ErrNoVersionSelected is returned when resolving or launching before a version was selected.
	ErrNoVersionSelected = errors.New("no version selected")
	// ErrNoManifest is returned when selecting a version before the manifest was loaded.
	ErrNoManifest = errors.New("version manifest not loaded")
	// ErrLibraryNotFound is returned when a library that applies to the platform has nothing to download.
	ErrLibraryNotFound = version.ErrLibraryNotFound
	// ErrArtifactMissing is returned when a version has no client archive.
	ErrArtifactMissing = errors.New("artifact missing")
	// ErrRuntimeNotFound is returned when no Java runtime build exists for the component and platform.
	ErrRuntimeNotFound = version.ErrRuntimeNotFound
	// ErrExtract is returned when a native library cannot be extracted.
	ErrExtract = errors.New("error extracting native library")
	// ErrNotInstalled is returned when verifying a version that was never resolved.
	ErrNotInstalled = errors.New("version not installed")
	// ErrProcess is returned when the game process cannot be started or waited for.
	ErrProcess = errors.New("game process error")
)
