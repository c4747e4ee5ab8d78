// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/launcher"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// NewVersionsCmd returns command that lists Minecraft versions in the version manifest.
func NewVersionsCmd(o *globals.GlobalOpts) *cli.Command {
	return &cli.Command{
		Name:  "versions",
		Usage: "List Minecraft versions",
		Description: `Versions are listed newest first, in the order of the version manifest.

The manifest is downloaded once into $MCLAUNCH_HOME/versions. Delete it to
see versions released since.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "channel",
				Aliases: []string{"c"},
				Usage:   "Only list versions of the channel: release, snapshot, old_beta or old_alpha",
			},
			&cli.BoolFlag{
				Name:    "installed",
				Aliases: []string{"i"},
				Usage:   "Only list versions that were installed",
			}},
		Action: func(c *cli.Context) error {
			var channel version.Channel
			if name := c.String("channel"); name != "" {
				var err error
				if channel, err = version.ParseChannel(name); err != nil {
					return NewValidationError(err.Error())
				}
			}

			m, err := launcher.LoadManifest(c.Context, o)
			if err != nil {
				return err
			}
			rows := m.Versions
			if channel != "" {
				rows = m.ByChannel(channel)
			}
			if c.Bool("installed") {
				rows = installedVersions(o, rows)
			}

			if len(rows) == 0 {
				fmt.Fprintln(c.App.Writer, "No versions, yet") //nolint
			} else {
				printVersions(rows, c.App.Writer)
			}
			return nil
		},
	}
}

// installedVersions returns the versions whose descriptor was downloaded.
func installedVersions(o *globals.GlobalOpts, versions []version.ManifestVersion) []version.ManifestVersion {
	var result []version.ManifestVersion
	for _, v := range versions {
		if _, err := os.Stat(o.DescriptorFile(v.ID)); err == nil {
			result = append(result, v)
		}
	}
	return result
}

func printVersions(rows []version.ManifestVersion, w io.Writer) {
	// This doesn't use tabwriter because the columns are likely to remain the same width for the foreseeable future.
	fmt.Fprintln(w, "ID\tTYPE\tRELEASE_TIME") //nolint
	for _, v := range rows {                  //nolint:gocritic
		fmt.Fprintf(w, "%s\t%s\t%s\n", v.ID, v.Type, v.ReleaseTime) //nolint
	}
}
