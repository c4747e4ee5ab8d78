// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/urfave/cli/v2"

	"github.com/RafaelrainBR/minecraft-launcher/internal/config"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/launcher"
)

// NewRunCmd returns command that installs and launches a version, blocking until the game exits.
func NewRunCmd(o *globals.GlobalOpts) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run a [version] of Minecraft until the game exits",
		ArgsUsage: "[version]",
		Description: `The '[version]' is an ID from the "versions" command. When absent, the
version run last is run again.

The version is downloaded and installed, if necessary. The game runs in
$MCLAUNCH_HOME/game with the user name and JVM arguments of
$MCLAUNCH_HOME/launcher_config.yaml, which records the version when the
game exits.

Example:
$ mclaunch run --username Steve 1.20.1`,
		Flags: []cli.Flag{usernameFlag()},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, o)
			if err != nil {
				return err
			}
			id := c.Args().First()
			if id == "" {
				id = cfg.LastSelectedVersionID
			}
			if id == "" {
				return NewValidationError("missing [version] argument: no version was run before")
			}
			if c.NArg() > 1 {
				return NewValidationError(fmt.Sprintf("unexpected arguments: %q", c.Args().Tail()))
			}

			i, err := resolve(c.Context, o, id)
			if err != nil {
				return err
			}
			state, err := launcher.Launch(c.Context, o, i, cfg)
			if err != nil {
				return err
			}

			cfg.LastSelectedVersionID = i.Descriptor.ID
			if err = cfg.Save(o.ConfigFile()); err != nil {
				return err
			}
			if code := state.ExitCode(); code != 0 {
				return fmt.Errorf("%s exited with code %d", id, code)
			}
			return nil
		},
	}
}

func usernameFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "username",
		Aliases: []string{"u"},
		Usage:   "Player name in the game. Saved as user_name in launcher_config.yaml",
	}
}

// loadConfig returns the persisted configuration, with --username applied.
func loadConfig(c *cli.Context, o *globals.GlobalOpts) (*config.Config, error) {
	cfg, err := config.Load(o.ConfigFile())
	if err != nil {
		return nil, err
	}
	if c.IsSet("username") {
		name := c.String("username")
		if !govalidator.StringLength(name, "1", "16") || !govalidator.Matches(name, `^[A-Za-z0-9_]+$`) {
			return nil, NewValidationError(fmt.Sprintf("invalid username %q: should be 1-16 letters, digits or underscores", name))
		}
		cfg.UserName = name
	}
	return cfg, nil
}
