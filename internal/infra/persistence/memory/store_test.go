package memory

import (
	"context"
	"testing"
	"time"

	"bdgaraj/internal/domain/repository"
	"bdgaraj/internal/infra/persistence/docstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Status    string            `json:"status"`
	Order     int               `json:"order"`
	Tags      []string          `json:"tags"`
	Specs     map[string]string `json:"specs"`
	CreatedAt time.Time         `json:"created_at"`
}

func seed(t *testing.T, coll docstore.Collection, items ...item) {
	t.Helper()
	for _, it := range items {
		require.NoError(t, coll.Insert(context.Background(), it))
	}
}

func TestCollection_FindOneAndFilter(t *testing.T) {
	ctx := context.Background()
	coll := New().Collection("items")
	seed(t, coll,
		item{ID: "a", Name: "first", Status: "active", Order: 2},
		item{ID: "b", Name: "second", Status: "sold", Order: 1},
	)

	var got item
	require.NoError(t, coll.FindOne(ctx, repository.Filter{"id": "b"}, &got))
	assert.Equal(t, "second", got.Name)

	err := coll.FindOne(ctx, repository.Filter{"id": "missing"}, &got)
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	// Typed and numeric filter values match their JSON form.
	type status string
	n, err := coll.Count(ctx, repository.Filter{"status": status("active"), "order": 2})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestCollection_FindSorted(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	coll := New().Collection("items")
	seed(t, coll,
		item{ID: "a", Order: 3, CreatedAt: base.Add(2 * time.Hour)},
		item{ID: "b", Order: 1, CreatedAt: base},
		item{ID: "c", Order: 10, CreatedAt: base.Add(time.Hour)},
	)

	ids := func(items []item) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.ID)
		}

		return out
	}

	var byOrder []item
	require.NoError(t, coll.Find(ctx, nil, docstore.FindOptions{Sort: repository.ByOrder}, &byOrder))
	assert.Equal(t, []string{"b", "a", "c"}, ids(byOrder))

	var newest []item
	require.NoError(t, coll.Find(ctx, nil, docstore.FindOptions{Sort: repository.NewestFirst}, &newest))
	assert.Equal(t, []string{"a", "c", "b"}, ids(newest))

	var none []item
	require.NoError(t, coll.Find(ctx, repository.Filter{"id": "zzz"}, docstore.FindOptions{}, &none))
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCollection_SetMergesFields(t *testing.T) {
	ctx := context.Background()
	coll := New().Collection("items")
	seed(t, coll, item{ID: "a", Name: "old", Status: "active", Tags: []string{"x"}, Specs: map[string]string{"km": "100"}})

	matched, err := coll.Set(ctx, repository.Filter{"id": "a"}, map[string]any{
		"name":  "new",
		"specs": map[string]string{"year": "2020"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	var got item
	require.NoError(t, coll.FindOne(ctx, repository.Filter{"id": "a"}, &got))
	assert.Equal(t, "new", got.Name)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, []string{"x"}, got.Tags)
	assert.Equal(t, map[string]string{"year": "2020"}, got.Specs)

	matched, err = coll.Set(ctx, repository.Filter{"id": "missing"}, map[string]any{"name": "n"})
	require.NoError(t, err)
	assert.Zero(t, matched)
}

func TestCollection_Delete(t *testing.T) {
	ctx := context.Background()
	coll := New().Collection("items")
	seed(t, coll, item{ID: "a"}, item{ID: "b"})

	removed, err := coll.Delete(ctx, repository.Filter{"id": "a"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = coll.Delete(ctx, repository.Filter{"id": "a"})
	require.NoError(t, err)
	assert.Zero(t, removed)

	n, err := coll.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_CollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := New()
	seed(t, store.Collection("one"), item{ID: "a"})

	n, err := store.Collection("two").Count(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = store.Collection("one").Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, store.Ping(ctx))
}
