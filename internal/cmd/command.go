// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"bitbucket.org/creachadair/shell"
	"github.com/urfave/cli/v2"

	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/launcher"
)

// NewCommandCmd returns command that prints how "run" would launch a version.
func NewCommandCmd(o *globals.GlobalOpts) *cli.Command {
	return &cli.Command{
		Name:      "command",
		Usage:     "Print the shell command that runs a <version> of Minecraft",
		ArgsUsage: "<version>",
		Description: `The version is downloaded and installed, if necessary, but not run.

The command runs in $MCLAUNCH_HOME/game and is quoted for a POSIX shell.

Example:
$ cd ~/.mclaunch/game && eval "$(mclaunch command 1.20.1)"`,
		Flags:  []cli.Flag{usernameFlag()},
		Before: validateVersionArg,
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c, o)
			if err != nil {
				return err
			}
			i, err := resolve(c.Context, o, c.Args().First())
			if err != nil {
				return err
			}
			argv, err := launcher.BuildCommand(o, i, cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, shell.Join(argv)) //nolint
			return nil
		},
	}
}
