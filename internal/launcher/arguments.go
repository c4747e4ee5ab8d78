// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"sort"
	"strings"

	"github.com/RafaelrainBR/minecraft-launcher/internal/config"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// Fixed values for the session placeholders, as there is no authentication.
const (
	AuthUUID        = "abcde"
	AuthAccessToken = "token"
	UserType        = "msa"
	UserProperties  = "{}"
)

// Arguments are the JVM and game arguments of an Installation after placeholders are replaced.
type Arguments struct {
	JVM  []string
	Game []string
}

// Placeholders returns the value of each placeholder name, ex. "auth_player_name" for "${auth_player_name}".
func Placeholders(o *globals.GlobalOpts, i *Installation, c *config.Config) map[string]string {
	d := i.Descriptor
	return map[string]string{
		"auth_player_name":    c.UserName,
		"version_name":        d.ID,
		"game_directory":      o.GameDir(),
		"assets_root":         o.AssetsDir(),
		"assets_index_name":   assetIndexID(d),
		"auth_uuid":           AuthUUID,
		"auth_access_token":   AuthAccessToken,
		"user_type":           UserType,
		"user_properties":     UserProperties,
		"version_type":        string(d.Type),
		"natives_directory":   i.NativesDir,
		"classpath":           strings.Join(i.Classpath, o.Platform.ClasspathSeparator()),
		"classpath_separator": o.Platform.ClasspathSeparator(),
		"library_directory":   o.LibrariesDir(),
		"launcher_name":       globals.LauncherName,
		"launcher_version":    launcherVersion(o),
	}
}

func launcherVersion(o *globals.GlobalOpts) string {
	if o.Version == "" {
		return "dev"
	}
	return o.Version
}

// Substitute replaces every "${name}" in each argument with values[name]. Unknown placeholders are left as is.
func Substitute(args []string, values map[string]string) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names)*2)
	for _, name := range names {
		pairs = append(pairs, "${"+name+"}", values[name])
	}
	r := strings.NewReplacer(pairs...)

	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = r.Replace(arg)
	}
	return result
}

// SelectArguments returns the raw game and JVM arguments of the version for the platform. Versions without structured
// arguments split "minecraftArguments" on whitespace and have no JVM arguments.
func SelectArguments(o *globals.GlobalOpts, d *version.Descriptor) (game, jvm []string) {
	if d.Arguments != nil {
		return d.Arguments.Select(o.Platform)
	}
	return strings.Fields(d.MinecraftArguments), nil
}

// ComposeArguments returns the arguments of the installation with placeholders replaced.
//
// JVM arguments are those of the version, followed by the logging configuration argument, followed by
// config.Config JVMArgs.
func ComposeArguments(o *globals.GlobalOpts, i *Installation, c *config.Config) (*Arguments, error) {
	game, jvm := SelectArguments(o, i.Descriptor)
	if i.LoggingConfigFile != "" {
		jvm = append(jvm, strings.ReplaceAll(i.Descriptor.Logging.Client.Argument, "${path}", i.LoggingConfigFile))
	}
	userJVM, err := c.SplitJVMArgs()
	if err != nil {
		return nil, err
	}
	jvm = append(jvm, userJVM...)

	values := Placeholders(o, i, c)
	return &Arguments{JVM: Substitute(jvm, values), Game: Substitute(game, values)}, nil
}
