// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"context"
	"sort"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
	"github.com/RafaelrainBR/minecraft-launcher/internal/globals"
	"github.com/RafaelrainBR/minecraft-launcher/internal/version"
)

// ResolveAssetIndex returns the asset index of the version, downloading it if it isn't cached.
func ResolveAssetIndex(ctx context.Context, o *globals.GlobalOpts, d *version.Descriptor) (*version.AssetIndex, error) {
	id := assetIndexID(d)
	index := &version.AssetIndex{}
	r := cache.Request{Path: o.AssetIndexFile(id), URL: d.AssetIndex.URL, SHA1: d.AssetIndex.SHA1, Size: d.AssetIndex.Size}
	if err := o.Cache().FetchJSON(ctx, r, index); err != nil {
		return nil, err
	}
	return index, nil
}

// assetIndexID is the asset group of the version, which names its index file and the ${assets_index_name}.
func assetIndexID(d *version.Descriptor) string {
	if d.AssetIndex.ID != "" {
		return d.AssetIndex.ID
	}
	return d.Assets
}

// MaterializeAssets downloads every object of the index into the objects directory. Objects sharing a hash are
// downloaded once.
func MaterializeAssets(ctx context.Context, o *globals.GlobalOpts, index *version.AssetIndex) error {
	names := make([]string, 0, len(index.Objects))
	for name := range index.Objects {
		names = append(names, name)
	}
	sort.Strings(names)

	base := o.AssetObjectsDir()
	seen := map[string]struct{}{}
	requests := make([]cache.Request, 0, len(names))
	for _, name := range names {
		obj := index.Objects[name]
		if err := obj.Validate(); err != nil {
			return err
		}
		if _, ok := seen[obj.Hash]; ok {
			continue
		}
		seen[obj.Hash] = struct{}{}
		requests = append(requests, cache.Request{Path: obj.Path(base), URL: obj.URL(o.AssetsURL), SHA1: obj.Hash, Size: obj.Size})
	}
	o.Log().Named("assets").Debug("materializing assets", "objects", len(requests))
	return fetchAll(ctx, o, requests)
}
