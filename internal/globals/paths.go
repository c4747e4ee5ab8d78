// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package globals

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFile returns the persisted user configuration: "$HomeDir/launcher_config.yaml"
func (o *GlobalOpts) ConfigFile() string {
	return filepath.Join(o.HomeDir, "launcher_config.yaml")
}

// VersionsDir returns "$HomeDir/versions", which holds the version index and one directory per version.
func (o *GlobalOpts) VersionsDir() string {
	return filepath.Join(o.HomeDir, "versions")
}

// VersionManifestFile returns the cached version index.
func (o *GlobalOpts) VersionManifestFile() string {
	return filepath.Join(o.VersionsDir(), "version_manifest.json")
}

// VersionDir returns "$HomeDir/versions/{id}"
func (o *GlobalOpts) VersionDir(id string) string {
	return filepath.Join(o.VersionsDir(), id)
}

// DescriptorFile returns "$HomeDir/versions/{id}/{id}.json"
func (o *GlobalOpts) DescriptorFile(id string) string {
	return filepath.Join(o.VersionDir(id), id+".json")
}

// ClientFile returns "$HomeDir/versions/{id}/{id}.jar", the head of the classpath.
func (o *GlobalOpts) ClientFile(id string) string {
	return filepath.Join(o.VersionDir(id), id+".jar")
}

// NativesDir returns "$HomeDir/versions/{id}/natives", where native libraries are extracted.
func (o *GlobalOpts) NativesDir(id string) string {
	return filepath.Join(o.VersionDir(id), "natives")
}

// LibrariesDir returns "$HomeDir/libraries"
func (o *GlobalOpts) LibrariesDir() string {
	return filepath.Join(o.HomeDir, "libraries")
}

// LibraryFile returns the cache path of a library given its slash-delimited relative path.
func (o *GlobalOpts) LibraryFile(relPath string) string {
	return filepath.Join(o.LibrariesDir(), filepath.FromSlash(relPath))
}

// AssetsDir returns "$HomeDir/assets", substituted for ${assets_root}
func (o *GlobalOpts) AssetsDir() string {
	return filepath.Join(o.HomeDir, "assets")
}

// AssetIndexFile returns "$HomeDir/assets/indexes/{id}.json"
func (o *GlobalOpts) AssetIndexFile(id string) string {
	return filepath.Join(o.AssetsDir(), "indexes", id+".json")
}

// AssetObjectsDir returns "$HomeDir/assets/objects", which is sharded by hash prefix.
func (o *GlobalOpts) AssetObjectsDir() string {
	return filepath.Join(o.AssetsDir(), "objects")
}

// LogConfigFile returns "$HomeDir/assets/log_configs/{id}"
func (o *GlobalOpts) LogConfigFile(id string) string {
	return filepath.Join(o.AssetsDir(), "log_configs", id)
}

// GameDir returns "$HomeDir/game", the working directory of the game process.
func (o *GlobalOpts) GameDir() string {
	return filepath.Join(o.HomeDir, "game")
}

// RuntimesDir returns "$HomeDir/runtimes"
func (o *GlobalOpts) RuntimesDir() string {
	return filepath.Join(o.HomeDir, "runtimes")
}

// RuntimeIndexFile returns the cached Java runtime index.
func (o *GlobalOpts) RuntimeIndexFile() string {
	return filepath.Join(o.RuntimesDir(), "index.json")
}

// RuntimeManifestFile returns "$HomeDir/runtimes/manifests/{component}.json"
func (o *GlobalOpts) RuntimeManifestFile(component string) string {
	return filepath.Join(o.RuntimesDir(), "manifests", component+".json")
}

// RuntimeDir returns "$HomeDir/runtimes/{component}", the root of an extracted runtime file tree.
func (o *GlobalOpts) RuntimeDir(component string) string {
	return filepath.Join(o.RuntimesDir(), component)
}

// Mkdirs creates the base directory tree. This is idempotent.
func (o *GlobalOpts) Mkdirs() error {
	for _, dir := range []string{
		o.VersionsDir(),
		o.LibrariesDir(),
		o.AssetsDir(),
		filepath.Dir(o.AssetIndexFile("_")),
		o.AssetObjectsDir(),
		o.GameDir(),
	} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("unable to create directory %q: %w", dir, err)
		}
	}
	return nil
}
