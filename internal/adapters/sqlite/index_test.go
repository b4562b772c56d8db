package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowdoc/internal/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex()
	require.NoError(t, idx.Open(filepath.Join(t.TempDir(), "nested", "index.db")))
	t.Cleanup(func() { idx.Close() })
	return idx
}

func summary(id, name, slug string) domain.ItemSummary {
	return domain.ItemSummary{
		ID:          id,
		Name:        name,
		Slug:        slug,
		LastUpdated: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC),
		CreatedOn:   time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestIndex_SyncCountsChanges(t *testing.T) {
	idx := openTestIndex(t)

	stats, err := idx.Sync("col-1", []domain.ItemSummary{
		summary("a", "Install Basics", "install-basics"),
		summary("b", "Upgrade Notes", "upgrade-notes"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.ItemsAdded)
	assert.Zero(t, stats.ItemsUpdated)
	assert.Zero(t, stats.ItemsDeleted)

	stats, err = idx.Sync("col-1", []domain.ItemSummary{
		summary("b", "Upgrade Notes v2", "upgrade-notes"),
		summary("c", "Troubleshooting", "troubleshooting"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ItemsAdded)
	assert.Equal(t, 1, stats.ItemsUpdated)
	assert.Equal(t, 1, stats.ItemsDeleted)

	count, err := idx.Count("col-1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIndex_CollectionsAreIsolated(t *testing.T) {
	idx := openTestIndex(t)

	_, err := idx.Sync("col-1", []domain.ItemSummary{summary("a", "Alpha", "alpha")})
	require.NoError(t, err)
	_, err = idx.Sync("col-2", nil)
	require.NoError(t, err)

	count, err := idx.Count("col-1")
	require.NoError(t, err)
	assert.Equal(t, 1, count, "syncing another collection must not delete items")
}

func TestIndex_Search(t *testing.T) {
	idx := openTestIndex(t)
	_, err := idx.Sync("col-1", []domain.ItemSummary{
		summary("a1", "Install Basics", "install-basics"),
		summary("b2", "Upgrade Notes", "upgrade-notes"),
		summary("c3", "100% Coverage", "full_coverage"),
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"by name case insensitive", "install", []string{"a1"}},
		{"by slug", "upgrade-notes", []string{"b2"}},
		{"by id", "c3", []string{"c3"}},
		{"percent is literal", "100%", []string{"c3"}},
		{"underscore is literal", "l_c", []string{"c3"}},
		{"no match", "missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := idx.Search("col-1", tt.query)
			require.NoError(t, err)

			var ids []string
			for _, r := range results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestIndex_SearchPreservesTimestamps(t *testing.T) {
	idx := openTestIndex(t)
	want := summary("a", "Alpha", "alpha")
	want.IsDraft = true
	_, err := idx.Sync("col-1", []domain.ItemSummary{want})
	require.NoError(t, err)

	results, err := idx.Search("col-1", "alpha")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, want.LastUpdated.Equal(results[0].LastUpdated))
	assert.True(t, results[0].IsDraft)
}

func TestIndex_LastSync(t *testing.T) {
	idx := openTestIndex(t)

	last, err := idx.LastSync("col-1")
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	before := time.Now().Add(-time.Second)
	_, err = idx.Sync("col-1", nil)
	require.NoError(t, err)

	last, err = idx.LastSync("col-1")
	require.NoError(t, err)
	assert.True(t, last.After(before))
}
