// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"os"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/test"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

func TestVerify(t *testing.T) {
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)
	i := requireResolve(t, o, test.FakeVersion)
	m, err := LoadManifest(context.Background(), o)
	require.NoError(t, err)
	v, ok := m.Find(test.FakeVersion)
	require.True(t, ok)

	before := s.TotalRequests()
	require.NoError(t, Verify(o, v))

	require.NoError(t, os.WriteFile(i.Classpath[1], []byte("corrupt"), 0o600))
	require.NoError(t, os.Remove(i.JavaPath))

	err = Verify(o, v)
	require.Equal(t, before, s.TotalRequests(), "verify never downloads")
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	require.ErrorIs(t, merr.Errors[0], cache.ErrChecksumMismatch)
	require.Contains(t, merr.Errors[0].Error(), i.Classpath[1]+": checksum mismatch: expected size ")
	require.ErrorIs(t, merr.Errors[1], os.ErrNotExist)
}

func TestVerify_NotInstalled(t *testing.T) {
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)

	err := Verify(o, version.ManifestVersion{ID: test.FakeVersion})
	require.ErrorIs(t, err, ErrNotInstalled)
	require.EqualError(t, err, "version not installed: "+test.FakeVersion)
	require.Zero(t, s.TotalRequests())
}

func TestVerify_RuntimeNotFound(t *testing.T) {
	s := test.RequireLauncherTestServer(t)
	o := newOpts(t, s)
	m, err := LoadManifest(context.Background(), o)
	require.NoError(t, err)
	v, _ := m.Find(test.FakeLegacyVersion)
	_, err = LoadDescriptor(context.Background(), o, v)
	require.NoError(t, err)
	_, err = SelectRuntimeManifest(context.Background(), o, test.FakeComponent)
	require.NoError(t, err)

	err = Verify(o, v)
	require.ErrorIs(t, err, ErrRuntimeNotFound) // nothing else was downloaded either
	require.ErrorIs(t, err, os.ErrNotExist)
}
