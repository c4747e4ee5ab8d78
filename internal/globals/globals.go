// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package globals

import (
	"io"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
	"github.com/RafaelrainBR/minecraft-launcher/internal/transport"
)

// RunOpts support invocations of "mclaunch run"
type RunOpts struct {
	// JavaPath is the exec.Cmd path to "java". Defaults to the executable inside the resolved runtime directory.
	JavaPath string
	// GameIn, GameOut and GameErr are the standard streams of the game process. Defaults to the os.Std* streams.
	GameIn           io.Reader
	GameOut, GameErr io.Writer
}

// GlobalOpts represents options that affect more than one mclaunch command.
//
// Fields representing non-hidden flags have values set according to the following rules:
//  1. value that precedes flag parsing, used in tests
//  2. to a value of the command line argument, e.g. `--home-dir`
//  3. optional mapping to an environment variable, e.g. `MCLAUNCH_HOME` (not all flags are mapped to ENV)
//  4. otherwise, to the default value, e.g. DefaultHomeDir
type GlobalOpts struct {
	// RunOpts are inlined to allow tests to override parameters without changing ENV variables or flags
	RunOpts
	// ManifestURL is the path to the version_manifest_v2.json. Defaults to DefaultManifestURL
	ManifestURL string
	// RuntimesURL is the path to the Java runtime index. Defaults to DefaultRuntimesURL
	RuntimesURL string
	// AssetsURL is the base URL asset objects are fetched from. Defaults to DefaultAssetsURL
	AssetsURL string
	// HomeDir contains every downloaded artifact and the game directory. Defaults to DefaultHomeDir
	HomeDir string
	// Platform is the host the installation is resolved for. Defaults to platform.Detect
	Platform platform.Platform
	// Parallelism bounds concurrent downloads within one resolution phase. Defaults to DefaultParallelism
	Parallelism int
	// VerifyChecksums enables SHA-1 and size checks of downloaded and cached artifacts.
	VerifyChecksums bool
	// PreferCompressed fetches the lzma variant of runtime files when the runtime manifest has one.
	PreferCompressed bool
	// Version is the version of the CLI, used in help statements, HTTP requests via "User-Agent" and
	// the ${launcher_version} placeholder.
	Version string
	// Out is where status messages are written. Defaults to os.Stdout
	Out io.Writer
	// Logger is the root logger. Defaults to a logger writing to os.Stderr at DefaultLogLevel
	Logger hclog.Logger

	cacheOnce sync.Once
	cache     *cache.Cache
}

const (
	// LauncherName is substituted for ${launcher_name} and prefixes the "User-Agent"
	LauncherName = "mclaunch"
	// DefaultHomeDir is the default value for GlobalOpts.HomeDir
	DefaultHomeDir = "~/.mclaunch"
	// DefaultManifestURL is the default value for GlobalOpts.ManifestURL
	DefaultManifestURL = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"
	// DefaultRuntimesURL is the default value for GlobalOpts.RuntimesURL
	DefaultRuntimesURL = "https://launchermeta.mojang.com/v1/products/java-runtime/2ec0cc96c44e5a76b9c8b7c39df7210883d12871/all.json"
	// DefaultAssetsURL is the default value for GlobalOpts.AssetsURL
	DefaultAssetsURL = "https://resources.download.minecraft.net"
	// DefaultParallelism is the default value for GlobalOpts.Parallelism
	DefaultParallelism = 8
	// DefaultLogLevel is the level of GlobalOpts.Logger unless overridden by `--log-level`
	DefaultLogLevel = "info"
)

// UserAgent returns the 'User-Agent' header value used in HTTP requests.
//
// The returned value limits cardinality to formal release * platform or one value for all non-releases.
func (o *GlobalOpts) UserAgent() string {
	if o.Version == "" || o.Version == "dev" {
		return LauncherName + "/dev"
	}
	return LauncherName + "/" + o.Version + " (" + o.Platform.String() + ")"
}

// Log returns GlobalOpts.Logger or a null logger when it is unset, which is common in tests.
func (o *GlobalOpts) Log() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// Cache returns the artifact cache shared by every download made with these options.
// It is created on first use, so fields it depends on must be set before.
func (o *GlobalOpts) Cache() *cache.Cache {
	o.cacheOnce.Do(func() {
		o.cache = cache.New(transport.New(o.UserAgent()), o.Log().Named("cache"), o.VerifyChecksums)
	})
	return o.cache
}
