// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/asaskevich/govalidator"
	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/go-homedir"
	"github.com/urfave/cli/v2"

	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/launcher"
	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
)

// NewApp create a new root command. The globals.GlobalOpts parameter allows tests to scope overrides, which avoids
// having to define a flag for everything needed in tests.
func NewApp(o *globals.GlobalOpts) *cli.App {
	var homeDir, manifestURL, runtimesURL, assetsURL, platformName, logLevel string
	var parallelism int
	var verifyChecksums, preferCompressed, logJSON bool

	app := cli.NewApp()
	app.Name = globals.LauncherName
	app.HelpName = globals.LauncherName
	app.Usage = `Install and run Minecraft: Java Edition`
	app.Version = o.Version
	if app.Version == "" {
		app.Version = "dev"
	}
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:        "home-dir",
			Usage:       "mclaunch home directory (location of versions, libraries, assets, runtimes and the game directory)",
			DefaultText: globals.DefaultHomeDir,
			Destination: &homeDir,
			EnvVars:     []string{"MCLAUNCH_HOME"},
		},
		&cli.StringFlag{
			Name:        "manifest-url",
			Usage:       "URL of the version manifest JSON",
			DefaultText: globals.DefaultManifestURL,
			Destination: &manifestURL,
			EnvVars:     []string{"MCLAUNCH_MANIFEST_URL"},
		},
		&cli.StringFlag{
			Name:        "runtimes-url",
			Usage:       "URL of the Java runtime index JSON",
			DefaultText: globals.DefaultRuntimesURL,
			Destination: &runtimesURL,
			EnvVars:     []string{"MCLAUNCH_RUNTIMES_URL"},
		},
		&cli.StringFlag{
			Name:        "assets-url",
			Usage:       "Base URL of asset objects",
			DefaultText: globals.DefaultAssetsURL,
			Destination: &assetsURL,
			EnvVars:     []string{"MCLAUNCH_ASSETS_URL"},
		},
		&cli.IntFlag{
			Name:        "parallelism",
			Usage:       "Maximum concurrent downloads",
			Value:       globals.DefaultParallelism,
			Destination: &parallelism,
		},
		&cli.BoolFlag{
			Name:        "verify-checksums",
			Usage:       "Verify the SHA-1 sum and size of downloaded and cached artifacts",
			Destination: &verifyChecksums,
		},
		&cli.BoolFlag{
			Name:        "prefer-compressed",
			Usage:       "Download the lzma variant of Java runtime files when there is one",
			Destination: &preferCompressed,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "One of trace, debug, info, warn, error or off",
			Value:       globals.DefaultLogLevel,
			Destination: &logLevel,
			EnvVars:     []string{"MCLAUNCH_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:        "log-json",
			Usage:       "Log in JSON format. Defaults to true when stderr is not a terminal",
			Destination: &logJSON,
		},
		&cli.StringFlag{
			Name:        "platform",
			Usage:       "Resolve for the os/arch platform instead of the host, e.g. windows/amd64",
			Hidden:      true, // downloads for another platform cannot run here
			Destination: &platformName,
		},
	}
	app.Before = func(c *cli.Context) error {
		if o.Out == nil {
			o.Out = c.App.Writer
		}
		if err := setLogger(o, c.App.ErrWriter, logLevel, logJSON); err != nil {
			return err
		}
		if err := setHomeDir(o, homeDir); err != nil {
			return err
		}
		if err := setURL(&o.ManifestURL, manifestURL, globals.DefaultManifestURL, "manifest"); err != nil {
			return err
		}
		if err := setURL(&o.RuntimesURL, runtimesURL, globals.DefaultRuntimesURL, "runtimes"); err != nil {
			return err
		}
		if err := setURL(&o.AssetsURL, assetsURL, globals.DefaultAssetsURL, "assets"); err != nil {
			return err
		}
		if err := setParallelism(o, parallelism); err != nil {
			return err
		}
		o.VerifyChecksums = o.VerifyChecksums || verifyChecksums
		o.PreferCompressed = o.PreferCompressed || preferCompressed
		return setPlatform(o, platformName)
	}

	app.HideHelp = true
	app.Commands = []*cli.Command{
		helpCommand,
		NewVersionsCmd(o),
		NewInstallCmd(o),
		NewRunCmd(o),
		NewCommandCmd(o),
		NewVerifyCmd(o),
	}
	return app
}

// helpCommand allows us to hide the global flags which cleans up help and markdown
var helpCommand = &cli.Command{
	Name:      "help",
	Usage:     "Shows how to use a [command]",
	ArgsUsage: "[command]",
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Present() {
			return cli.ShowCommandHelp(c, args.First())
		}
		return cli.ShowAppHelp(c)
	},
}

func setLogger(o *globals.GlobalOpts, w io.Writer, level string, logJSON bool) error {
	if o.Logger != nil { // overridden for tests
		return nil
	}
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		return NewValidationError(fmt.Sprintf("invalid log level %q: should be one of trace, debug, info, warn, error, off", level))
	}
	if w == nil {
		w = os.Stderr
	}
	o.Logger = hclog.New(&hclog.LoggerOptions{
		Name:       globals.LauncherName,
		Level:      l,
		Output:     w,
		JSONFormat: logJSON || isRedirected(w),
	})
	return nil
}

// isRedirected is true when w is a file that isn't a terminal, such as stderr piped to a log collector.
func isRedirected(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

func setHomeDir(o *globals.GlobalOpts, homeDir string) error {
	if o.HomeDir != "" { // overridden for tests
		return nil
	}
	if homeDir == "" {
		homeDir = globals.DefaultHomeDir
	}
	expanded, err := homedir.Expand(homeDir)
	if err != nil {
		return NewValidationError(fmt.Sprintf("unable to determine home directory. Set MCLAUNCH_HOME instead: %v", err))
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return NewValidationError(err.Error())
	}
	o.HomeDir = abs
	return nil
}

func setURL(field *string, value, defaultValue, name string) error {
	if *field != "" { // overridden for tests
		return nil
	}
	if value == "" {
		*field = defaultValue
		return nil
	}
	if !govalidator.IsRequestURL(value) || !govalidator.IsURL(value) {
		return NewValidationError(fmt.Sprintf("%q is not a valid %s URL", value, name))
	}
	*field = value
	return nil
}

func setParallelism(o *globals.GlobalOpts, parallelism int) error {
	if o.Parallelism != 0 { // overridden for tests
		return nil
	}
	if parallelism < 1 {
		return NewValidationError(fmt.Sprintf("invalid parallelism %d: should be at least 1", parallelism))
	}
	o.Parallelism = parallelism
	return nil
}

func setPlatform(o *globals.GlobalOpts, name string) error {
	if o.Platform != (platform.Platform{}) { // overridden for tests
		return nil
	}
	if name != "" {
		p, err := platform.Parse(name)
		if err != nil {
			return NewValidationError(err.Error())
		}
		o.Platform = p
		return nil
	}
	p, err := platform.Detect()
	if err != nil {
		return err
	}
	o.Platform = p
	return nil
}

// validateVersionArg ensures the command has a single <version> argument.
func validateVersionArg(c *cli.Context) error {
	switch c.NArg() {
	case 0:
		return NewValidationError("missing <version> argument")
	case 1:
		return nil
	}
	return NewValidationError(fmt.Sprintf("unexpected arguments: %q", c.Args().Tail()))
}

// resolve downloads everything needed to launch the version, unless already present.
func resolve(ctx context.Context, o *globals.GlobalOpts, id string) (*launcher.Installation, error) {
	s := launcher.NewSession(o)
	if _, err := s.LoadManifest(ctx); err != nil {
		return nil, err
	}
	if err := s.SelectVersion(id); err != nil {
		if errors.Is(err, launcher.ErrVersionNotFound) {
			return nil, NewValidationError(fmt.Sprintf("%s. Run \"%s versions\" to list them", err, globals.LauncherName))
		}
		return nil, err
	}
	return s.Resolve(ctx)
}
