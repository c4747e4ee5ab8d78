// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"crypto/sha1" //nolint:gosec // the remote manifests only declare SHA-1
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrChecksumMismatch is returned when content doesn't match its declared SHA-1 or size.
var ErrChecksumMismatch = errors.New("checksum mismatch")

// WriteFile writes data to path, creating parent directories as needed. The data is written to a temporary file in
// the same directory and renamed into place, so an interrupted write never leaves a partial file at path.
func WriteFile(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("unable to create directory %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("unable to create temporary file in %q: %w", dir, err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("unable to set mode of %s: %w", path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	success = true
	return nil
}

// Verify returns ErrChecksumMismatch if data doesn't match the declared SHA-1 sum or size. Empty values aren't checked.
func Verify(data []byte, sha1Sum string, size int64) error {
	if size > 0 && int64(len(data)) != size {
		return fmt.Errorf("%w: expected size %d, but have %d", ErrChecksumMismatch, size, len(data))
	}
	if sha1Sum == "" {
		return nil
	}
	h := sha1.Sum(data) //nolint:gosec
	if actual := hex.EncodeToString(h[:]); actual != sha1Sum {
		return fmt.Errorf("%w: expected SHA-1 sum %q, but have %q", ErrChecksumMismatch, sha1Sum, actual)
	}
	return nil
}

// VerifyFile is like Verify, except it reads the file at path.
func VerifyFile(path, sha1Sum string, size int64) error {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return err
	}
	return Verify(data, sha1Sum, size)
}
