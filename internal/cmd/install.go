// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
)

// NewInstallCmd returns command that downloads every artifact of a version without launching it.
func NewInstallCmd(o *globals.GlobalOpts) *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Download a <version> of Minecraft and its Java runtime",
		ArgsUsage: "<version>",
		Description: `The '<version>' is an ID from the "versions" command.

Artifacts already in $MCLAUNCH_HOME are not downloaded again.

Example:
$ mclaunch install 1.20.1`,
		Before: validateVersionArg,
		Action: func(c *cli.Context) error {
			i, err := resolve(c.Context, o, c.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintln(o.Out, "installed", i.Descriptor.ID) //nolint
			return nil
		},
	}
}
