// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
)

// fetchAll fetches the requests with at most GlobalOpts.Parallelism in flight. The first error cancels the rest.
func fetchAll(ctx context.Context, o *globals.GlobalOpts, requests []cache.Request) error {
	limit := o.Parallelism
	if limit < 1 {
		limit = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	c := o.Cache()
	for _, r := range requests {
		if ctx.Err() != nil {
			break // fail fast: don't queue the remaining requests
		}
		r := r
		g.Go(func() error {
			_, err := c.Fetch(ctx, r)
			return err
		})
	}
	return g.Wait()
}
