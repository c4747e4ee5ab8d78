// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package morerequire includes more require functions than "github.com/stretchr/testify/require"
// Do not add dependencies on any main code as it will cause cycles.
package morerequire

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireChdir changes the working directory until the test completes.
// Tests using this cannot run in parallel.
func RequireChdir(t *testing.T, dir string) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}
