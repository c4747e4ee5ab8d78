// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cmd"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
)

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args))
}

// version is the string representation of globals.GlobalOpts, set with -ldflags "-X main.version=..."
var version = "dev"

// run handles all error logging and coding so that no other place needs to.
func run(stdout, stderr io.Writer, args []string) int {
	app := cmd.NewApp(&globals.GlobalOpts{Version: version, Out: stdout})
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Action = func(c *cli.Context) error {
		command := c.Args().First()
		if command == "" { // Show help by default
			return cli.ShowSubcommandHelp(c)
		}
		return cmd.NewValidationError(fmt.Sprintf("unknown command %q", command))
	}
	app.OnUsageError = func(c *cli.Context, err error, isSub bool) error {
		return cmd.NewValidationError(err.Error())
	}
	sigCtx, sigCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer sigCancel()
	if err := app.RunContext(sigCtx, args); err != nil {
		var validationErr *cmd.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Fprintln(stderr, err) //nolint
			logUsageError(app.Name, stderr)
		} else {
			fmt.Fprintln(stderr, "error:", err) //nolint
		}
		return 1
	}
	return 0
}

func logUsageError(name string, stderr io.Writer) {
	fmt.Fprintln(stderr, "show usage with:", name, "help") //nolint
}
