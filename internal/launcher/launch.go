// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"bitbucket.org/creachadair/shell"

	"github.com/RafaelrainBR/minecraft-launcher/internal/config"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
)

// BuildCommand returns the argv that launches the installation:
//
//	java [jvm arguments] -Djava.library.path=<natives> -cp <classpath> <main class> [game arguments]
//
// The Java executable is GlobalOpts.JavaPath when set, otherwise the one of the resolved runtime.
func BuildCommand(o *globals.GlobalOpts, i *Installation, c *config.Config) ([]string, error) {
	if i == nil || i.Descriptor == nil {
		return nil, ErrNoVersionSelected
	}
	args, err := ComposeArguments(o, i, c)
	if err != nil {
		return nil, err
	}

	java := o.JavaPath
	if java == "" {
		java = i.JavaPath
	}
	argv := make([]string, 0, len(args.JVM)+len(args.Game)+5)
	argv = append(argv, java)
	argv = append(argv, args.JVM...)
	argv = append(argv,
		"-Djava.library.path="+i.NativesDir,
		"-cp", strings.Join(i.Classpath, o.Platform.ClasspathSeparator()),
		i.Descriptor.MainClass,
	)
	return append(argv, args.Game...), nil
}

// Launch runs the installation in the game directory and blocks until the game exits.
//
// A game exiting with a non-zero status is not an error: the returned state carries the exit code. Errors are
// ErrNoVersionSelected or wrap ErrProcess when the process could not be started or waited for.
func Launch(ctx context.Context, o *globals.GlobalOpts, i *Installation, c *config.Config) (*os.ProcessState, error) {
	argv, err := BuildCommand(o, i, c)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(o.GameDir(), 0o750); err != nil {
		return nil, fmt.Errorf("unable to create directory %q: %w", o.GameDir(), err)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) // #nosec -> the runtime comes from the runtime index
	cmd.Dir = o.GameDir()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	if o.GameIn != nil {
		cmd.Stdin = o.GameIn
	}
	if o.GameOut != nil {
		cmd.Stdout = o.GameOut
	}
	if o.GameErr != nil {
		cmd.Stderr = o.GameErr
	}

	logger := o.Log().Named("launcher")
	logger.Debug("starting", "command", shell.Join(argv), "dir", cmd.Dir)
	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: unable to start %s: %w", ErrProcess, argv[0], err)
	}
	logger.Info("game started", "version", i.Descriptor.ID, "pid", cmd.Process.Pid)

	err = cmd.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("%w: error waiting for %s: %w", ErrProcess, argv[0], err)
	}
	logger.Info("game exited", "version", i.Descriptor.ID, "state", cmd.ProcessState.String())
	return cmd.ProcessState, nil
}

