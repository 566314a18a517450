package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skallerud/splatvault/pkg/splat"
)

func openTestStore(t *testing.T) *AssetStore {
	t.Helper()
	store, err := NewAssetStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testCloud(count int) *splat.Cloud {
	cloud := &splat.Cloud{
		Count:     count,
		Positions: make([]float32, 3*count),
		Opacities: make([]float32, count),
	}
	for i := range cloud.Positions {
		cloud.Positions[i] = float32(i)
	}
	return cloud
}

func TestAssetStore_PutGet(t *testing.T) {
	store := openTestStore(t)

	meta, err := store.Put("bonsai", testCloud(4))
	require.NoError(t, err)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, "bonsai", meta.Name)
	assert.Equal(t, 4, meta.PointCount)
	assert.Greater(t, meta.SizeBytes, int64(0))

	cloud, gotMeta, err := store.Get(meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta.ID, gotMeta.ID)
	assert.Equal(t, testCloud(4).Positions, cloud.Positions)
	assert.Equal(t, testCloud(4).Opacities, cloud.Opacities)
	assert.Nil(t, cloud.Rotations)
}

func TestAssetStore_Meta(t *testing.T) {
	store := openTestStore(t)

	meta, err := store.Put("garden", testCloud(2))
	require.NoError(t, err)

	got, err := store.Meta(meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta.Name, got.Name)
	assert.Equal(t, meta.PointCount, got.PointCount)
}

func TestAssetStore_NotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Meta("no-such-id")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, _, err = store.Get("no-such-id")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	err = store.Delete("no-such-id")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestAssetStore_List(t *testing.T) {
	store := openTestStore(t)

	names := []string{"bicycle", "bonsai", "garden"}
	for _, name := range names {
		_, err := store.Put(name, testCloud(1))
		require.NoError(t, err)
	}

	metas, err := store.List()
	require.NoError(t, err)
	require.Len(t, metas, 3)

	seen := make(map[string]bool)
	for _, meta := range metas {
		seen[meta.Name] = true
	}
	for _, name := range names {
		assert.True(t, seen[name], "missing asset %s", name)
	}
}

func TestAssetStore_Delete(t *testing.T) {
	store := openTestStore(t)

	meta, err := store.Put("stump", testCloud(3))
	require.NoError(t, err)

	require.NoError(t, store.Delete(meta.ID))

	_, err = store.Meta(meta.ID)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	metas, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestAssetStore_Stats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Assets)

	_, err = store.Put("a", testCloud(5))
	require.NoError(t, err)
	_, err = store.Put("b", testCloud(7))
	require.NoError(t, err)

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Assets)
	assert.Equal(t, int64(12), stats.TotalPoints)
	assert.Greater(t, stats.TotalBytes, int64(0))
}
