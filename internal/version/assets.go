// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AssetIndex maps logical asset paths (ex. "minecraft/sounds/ambient/cave/cave1.ogg") to content objects.
type AssetIndex struct {
	Objects map[string]AssetObject `json:"objects"`
}

// AssetObject is content addressed by its SHA-1 hash.
type AssetObject struct {
	Hash string `json:"hash"`
	Size int64  `json:"size"`
}

// Shard is the two character prefix of the hash, used as the parent directory.
func (o AssetObject) Shard() string {
	if len(o.Hash) < 2 {
		return o.Hash
	}
	return o.Hash[:2]
}

// Path returns the local path of the object under the objects directory base, ex. base/ab/abcd1234...
func (o AssetObject) Path(base string) string {
	return filepath.Join(base, o.Shard(), o.Hash)
}

// URL returns the download URL of the object under the base URL, ex. base/ab/abcd1234...
func (o AssetObject) URL(base string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(base, "/"), o.Shard(), o.Hash)
}

// Validate returns an error if the hash cannot address a file.
func (o AssetObject) Validate() error {
	if len(o.Hash) < 2 || strings.ContainsAny(o.Hash, `/\.`) {
		return fmt.Errorf("invalid asset hash %q", o.Hash)
	}
	return nil
}
