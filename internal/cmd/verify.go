// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/launcher"
)

// NewVerifyCmd returns command that checks an installed version against the checksums of its artifacts.
func NewVerifyCmd(o *globals.GlobalOpts) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Check the artifacts of an installed <version> for corruption",
		ArgsUsage: "<version>",
		Description: `Every artifact of the version is compared to the SHA-1 sum and size in its
descriptor. Nothing is downloaded: run "install --verify-checksums" to
repair what is reported.`,
		Before: validateVersionArg,
		Action: func(c *cli.Context) error {
			m, err := launcher.LoadManifest(c.Context, o)
			if err != nil {
				return err
			}
			v, err := launcher.FindVersion(m, c.Args().First())
			if err != nil {
				return NewValidationError(err.Error())
			}
			if err = launcher.Verify(o, v); errors.Is(err, launcher.ErrNotInstalled) {
				return NewValidationError(err.Error())
			} else if err != nil {
				return err
			}
			fmt.Fprintln(o.Out, "verified", v.ID) //nolint
			return nil
		},
	}
}
