// Package assets persists assembled splat clouds in a local pebble
// database, keyed by KSUID. Metadata and cloud payloads live under
// separate key prefixes so listings never touch the large blobs.
package assets

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/skallerud/splatvault/pkg/splat"
)

// AssetStore manages persisted splat assets.
type AssetStore struct {
	db    *pebble.DB
	codec *splat.CloudCodec
}

// NewAssetStore opens (or creates) the pebble database at path.
func NewAssetStore(path string) (*AssetStore, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &AssetStore{db: db, codec: splat.NewCloudCodec()}, nil
}

func metaKey(id string) []byte {
	return []byte("meta:" + id)
}

func cloudKey(id string) []byte {
	return []byte("cloud:" + id)
}

// Put stores a cloud under a freshly minted id and returns its metadata.
func (s *AssetStore) Put(name string, cloud *splat.Cloud) (*AssetMeta, error) {
	blob, err := s.codec.Encode(cloud)
	if err != nil {
		return nil, err
	}

	meta := &AssetMeta{
		ID:         ksuid.New().String(),
		Name:       name,
		PointCount: cloud.Count,
		SizeBytes:  int64(len(blob)),
		CreatedAt:  time.Now().UTC(),
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, err
	}

	if err := s.db.Set(cloudKey(meta.ID), blob, pebble.NoSync); err != nil {
		return nil, err
	}
	// The meta write is the commit point, so it syncs.
	if err := s.db.Set(metaKey(meta.ID), metaJSON, pebble.Sync); err != nil {
		return nil, err
	}
	return meta, nil
}

// Meta returns the metadata for an asset.
func (s *AssetStore) Meta(id string) (*AssetMeta, error) {
	data, closer, err := s.db.Get(metaKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, err
	}
	defer closer.Close()

	var meta AssetMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, ErrCorruption
	}
	return &meta, nil
}

// Get returns the decoded cloud and its metadata.
func (s *AssetStore) Get(id string) (*splat.Cloud, *AssetMeta, error) {
	meta, err := s.Meta(id)
	if err != nil {
		return nil, nil, err
	}

	data, closer, err := s.db.Get(cloudKey(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, nil, ErrAssetNotFound
		}
		return nil, nil, err
	}
	defer closer.Close()

	cloud, err := s.codec.Decode(data)
	if err != nil {
		return nil, nil, ErrCorruption
	}
	return cloud, meta, nil
}

// List returns metadata for every stored asset.
func (s *AssetStore) List() ([]AssetMeta, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("meta:"),
		UpperBound: []byte("meta;"),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var metas []AssetMeta
	for iter.First(); iter.Valid(); iter.Next() {
		var meta AssetMeta
		if err := json.Unmarshal(iter.Value(), &meta); err != nil {
			return nil, ErrCorruption
		}
		metas = append(metas, meta)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	return metas, nil
}

// Delete removes an asset and its payload.
func (s *AssetStore) Delete(id string) error {
	if _, err := s.Meta(id); err != nil {
		return err
	}
	if err := s.db.Delete(cloudKey(id), pebble.NoSync); err != nil {
		return err
	}
	return s.db.Delete(metaKey(id), pebble.Sync)
}

// Stats aggregates counts and sizes across all assets.
func (s *AssetStore) Stats() (*StoreStats, error) {
	metas, err := s.List()
	if err != nil {
		return nil, err
	}

	stats := &StoreStats{Assets: len(metas)}
	for _, meta := range metas {
		stats.TotalPoints += int64(meta.PointCount)
		stats.TotalBytes += meta.SizeBytes
	}
	return stats, nil
}

// Close closes the underlying database.
func (s *AssetStore) Close() error {
	return s.db.Close()
}
