// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// Session is one user's path from the version index to a resolved Installation. A Session is not safe for concurrent
// use, but separate sessions can resolve concurrently with the same GlobalOpts.
type Session struct {
	o        *globals.GlobalOpts
	manifest *version.Manifest
	selected *version.ManifestVersion
}

// NewSession returns a Session without a manifest. Call LoadManifest next.
func NewSession(o *globals.GlobalOpts) *Session {
	return &Session{o: o}
}

// LoadManifest loads the version index into the session.
func (s *Session) LoadManifest(ctx context.Context) (*version.Manifest, error) {
	m, err := LoadManifest(ctx, s.o)
	if err != nil {
		return nil, err
	}
	s.manifest = m
	return m, nil
}

// Manifest returns the loaded manifest or nil.
func (s *Session) Manifest() *version.Manifest {
	return s.manifest
}

// SelectVersion selects the version Resolve resolves.
func (s *Session) SelectVersion(id string) error {
	if s.manifest == nil {
		return ErrNoManifest
	}
	v, err := FindVersion(s.manifest, id)
	if err != nil {
		return err
	}
	s.selected = &v
	return nil
}

// Selected returns the selected version, if any.
func (s *Session) Selected() (version.ManifestVersion, bool) {
	if s.selected == nil {
		return version.ManifestVersion{}, false
	}
	return *s.selected, true
}

// Installation is every artifact of a version, resolved for one platform and present on disk.
type Installation struct {
	Descriptor *version.Descriptor
	// Libraries are in classpath order, including natives.
	Libraries []version.ResolvedLibrary
	// Classpath is the client archive followed by every library that isn't native.
	Classpath  []string
	ClientFile string
	// LoggingConfigFile is "" when the version has no logging configuration.
	LoggingConfigFile string
	NativesDir        string
	RuntimeDir        string
	JavaPath          string
}

// Resolve downloads everything needed to launch the selected version and returns the result. Assets and the Java
// runtime are resolved concurrently after libraries. Nothing is launched.
func (s *Session) Resolve(ctx context.Context) (*Installation, error) {
	if s.selected == nil {
		return nil, ErrNoVersionSelected
	}
	return Resolve(ctx, s.o, *s.selected)
}

// Resolve is like Session.Resolve, except the version is given.
func Resolve(ctx context.Context, o *globals.GlobalOpts, v version.ManifestVersion) (*Installation, error) {
	logger := o.Log().Named("launcher")
	logger.Info("resolving version", "version", v.ID, "platform", o.Platform.String())

	if err := o.Mkdirs(); err != nil {
		return nil, err
	}

	d, err := LoadDescriptor(ctx, o, v)
	if err != nil {
		return nil, err
	}
	i := &Installation{Descriptor: d}
	if i.ClientFile, err = DownloadClient(ctx, o, d); err != nil {
		return nil, err
	}
	if i.Libraries, err = ResolveLibraries(ctx, o, d); err != nil {
		return nil, err
	}
	if i.Classpath, err = Classpath(o, i.ClientFile, i.Libraries); err != nil {
		return nil, err
	}
	if i.LoggingConfigFile, err = DownloadLoggingConfig(ctx, o, d); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		index, err := ResolveAssetIndex(gctx, o, d)
		if err != nil {
			return err
		}
		return MaterializeAssets(gctx, o, index)
	})
	g.Go(func() error {
		component := d.JavaVersion.Component
		ref, err := SelectRuntimeManifest(gctx, o, component)
		if err != nil {
			return err
		}
		i.RuntimeDir = o.RuntimeDir(component)
		i.JavaPath, err = DownloadRuntime(gctx, o, component, ref)
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	if i.NativesDir, err = ExtractNatives(ctx, o, d.ID, i.Libraries); err != nil {
		return nil, err
	}
	logger.Info("resolved version", "version", d.ID, "libraries", len(i.Libraries), "java", i.JavaPath)
	return i, nil
}

// String implements fmt.Stringer
func (i *Installation) String() string {
	return fmt.Sprintf("%s (%d libraries, java %s)", i.Descriptor.ID, len(i.Libraries), i.JavaPath)
}
