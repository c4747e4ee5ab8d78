// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"testing"

	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/platform"
	"github.com/RafaelrainBR/minecraft-launcher/internal/test"
)

var linux = platform.Platform{OS: platform.Linux, Arch: platform.X86_64}

// newOpts returns options that download from the server into a temporary home directory, resolving for linux.
func newOpts(t *testing.T, s *test.Server) *globals.GlobalOpts {
	return &globals.GlobalOpts{
		ManifestURL: s.ManifestURL(),
		RuntimesURL: s.RuntimesURL(),
		AssetsURL:   s.AssetsURL(),
		HomeDir:     t.TempDir(),
		Platform:    linux,
		Parallelism: 4,
	}
}
