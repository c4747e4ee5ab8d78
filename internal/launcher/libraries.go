// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// ResolveLibraries selects the libraries of the version that apply to GlobalOpts.Platform and downloads each of them
// into the libraries directory. The result is in declaration order, which is the classpath order.
func ResolveLibraries(ctx context.Context, o *globals.GlobalOpts, d *version.Descriptor) ([]version.ResolvedLibrary, error) {
	libs, err := version.SelectLibraries(d.Libraries, o.Platform)
	if err != nil {
		return nil, err
	}

	requests := make([]cache.Request, 0, len(libs))
	for i := range libs {
		r, err := libraryRequest(o, &libs[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	o.Log().Named("libraries").Debug("resolved libraries", "version", d.ID, "count", len(libs))
	if err = fetchAll(ctx, o, requests); err != nil {
		return nil, err
	}
	return libs, nil
}

// LibraryFile returns the path the library is cached at.
func LibraryFile(o *globals.GlobalOpts, l *version.ResolvedLibrary) (string, error) {
	p, err := l.Path()
	if err != nil {
		return "", err
	}
	return o.LibraryFile(p), nil
}

func libraryRequest(o *globals.GlobalOpts, l *version.ResolvedLibrary) (cache.Request, error) {
	path, err := LibraryFile(o, l)
	if err != nil {
		return cache.Request{}, err
	}
	return cache.Request{Path: path, URL: l.URL, SHA1: l.SHA1, Size: l.Size}, nil
}

// Classpath returns the client archive followed by the path of every library that isn't native, in order.
func Classpath(o *globals.GlobalOpts, clientFile string, libs []version.ResolvedLibrary) ([]string, error) {
	result := make([]string, 0, len(libs)+1)
	result = append(result, clientFile)
	for i := range libs {
		if libs[i].Native {
			continue
		}
		path, err := LibraryFile(o, &libs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, path)
	}
	return result, nil
}
