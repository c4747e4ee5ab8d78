// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package cache is the fetch-or-load primitive used by every downloader. An artifact occupies a path derived from
// its origin, and once that path exists no network access occurs for it again.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
)

// Fetcher retrieves a remote artifact in full, e.g. transport.Client.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Request identifies one artifact.
type Request struct {
	// Path is where the artifact is cached.
	Path string
	// URL is where the artifact is downloaded from when Path doesn't exist.
	URL string
	// SHA1 and Size are the declared reference, only checked when the Cache verifies. Empty values are not checked.
	SHA1 string
	Size int64
	// Mode is the permission of the cached file. Defaults to 0o644.
	Mode os.FileMode
	// Decode, when set, converts downloaded bytes before they are verified and written. Ex. lzma decompression.
	Decode func([]byte) ([]byte, error)
}

// Cache reads artifacts from disk or downloads them. It is safe for concurrent use: fetches of the same path are
// serialized and files are renamed into place, so a reader never sees a partially written file.
type Cache struct {
	fetcher Fetcher
	logger  hclog.Logger
	verify  bool

	mu    sync.Mutex
	locks map[string]*pathLock
}

type pathLock struct {
	sync.Mutex
	refs int
}

// New returns a Cache which downloads with the fetcher. When verify is true, cache hits that don't match the declared
// Request.SHA1 or Request.Size are downloaded again and downloads that don't match fail.
func New(fetcher Fetcher, logger hclog.Logger, verify bool) *Cache {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Cache{fetcher: fetcher, logger: logger, verify: verify, locks: map[string]*pathLock{}}
}

// Fetch returns the bytes of the artifact, downloading it into Request.Path if it isn't already there.
//
// Without verification, existing files are returned verbatim, even if they were truncated by a crash.
func (c *Cache) Fetch(ctx context.Context, r Request) ([]byte, error) {
	unlock := c.lock(r.Path)
	defer unlock()

	data, err := os.ReadFile(r.Path)
	switch {
	case err == nil:
		if !c.verify {
			c.logger.Trace("cache hit", "path", r.Path)
			return data, nil
		}
		verr := Verify(data, r.SHA1, r.Size)
		if verr == nil {
			c.logger.Trace("cache hit", "path", r.Path)
			return data, nil
		}
		c.logger.Warn("cached file is corrupt, downloading again", "path", r.Path, "error", verr)
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("error reading %s: %w", r.Path, err)
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	c.logger.Debug("downloading", "url", r.URL, "path", r.Path)
	if data, err = c.fetcher.Get(ctx, r.URL); err != nil {
		return nil, err
	}
	if r.Decode != nil {
		if data, err = r.Decode(data); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", r.URL, err)
		}
	}
	if c.verify {
		if err = Verify(data, r.SHA1, r.Size); err != nil {
			return nil, fmt.Errorf("error verifying %s: %w", r.URL, err)
		}
	}

	mode := r.Mode
	if mode == 0 {
		mode = 0o644
	}
	if err = WriteFile(r.Path, data, mode); err != nil {
		return nil, err
	}
	return data, nil
}

// FetchJSON is like Fetch, except the bytes are unmarshalled into v.
func (c *Cache) FetchJSON(ctx context.Context, r Request, v interface{}) error {
	data, err := c.Fetch(ctx, r)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error unmarshalling %s: %w", r.Path, err)
	}
	return nil
}

// lock serializes access to one path and returns the function that releases it.
func (c *Cache) lock(path string) func() {
	c.mu.Lock()
	l, ok := c.locks[path]
	if !ok {
		l = &pathLock{}
		c.locks[path] = l
	}
	l.refs++
	c.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		c.mu.Lock()
		if l.refs--; l.refs == 0 {
			delete(c.locks, path)
		}
		c.mu.Unlock()
	}
}
