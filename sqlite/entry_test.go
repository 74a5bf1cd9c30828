package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database, closed on cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestEntryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("assigns id, hash, and fetch time", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		rec := &docsearch.EntryRecord{
			Entry: docsearch.Entry{
				Title:    "Getting Started",
				Content:  "Install the tool.",
				URL:      "/getting-started",
				Category: "guides",
				Keywords: []string{"install", "setup"},
			},
		}

		err := s.CreateEntry(context.Background(), rec)

		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.NotEmpty(t, rec.ContentHash)
		assert.False(t, rec.FetchedAt.IsZero())
	})

	t.Run("rejects invalid records", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))

		err := s.CreateEntry(context.Background(), &docsearch.EntryRecord{
			Entry: docsearch.Entry{URL: "/no-title"},
		})

		assert.Equal(t, docsearch.EINVALID, docsearch.ErrorCode(err))
	})

	t.Run("duplicate URL conflicts", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		rec := func() *docsearch.EntryRecord {
			return &docsearch.EntryRecord{
				Entry: docsearch.Entry{Title: "A", URL: "/a"},
			}
		}

		require.NoError(t, s.CreateEntry(context.Background(), rec()))
		err := s.CreateEntry(context.Background(), rec())

		assert.Equal(t, docsearch.ECONFLICT, docsearch.ErrorCode(err))
	})
}

func TestEntryService_FindEntries(t *testing.T) {
	t.Parallel()

	t.Run("round-trips keywords and orders by position", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry:    docsearch.Entry{Title: "Second", URL: "/b", Category: "guides", Keywords: []string{"two"}},
			Position: 1,
		}))
		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry:    docsearch.Entry{Title: "First", URL: "/a", Category: "guides", Keywords: []string{"one", "uno"}},
			Position: 0,
		}))

		recs, err := s.FindEntries(ctx, docsearch.EntryFilter{})

		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "First", recs[0].Entry.Title)
		assert.Equal(t, []string{"one", "uno"}, recs[0].Entry.Keywords)
		assert.Equal(t, "Second", recs[1].Entry.Title)
	})

	t.Run("filters by category", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry: docsearch.Entry{Title: "A", URL: "/a", Category: "guides"},
		}))
		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry: docsearch.Entry{Title: "B", URL: "/b", Category: "api"},
		}))

		category := "api"
		recs, err := s.FindEntries(ctx, docsearch.EntryFilter{Category: &category})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "B", recs[0].Entry.Title)
	})

	t.Run("empty keywords stay empty", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry: docsearch.Entry{Title: "A", URL: "/a"},
		}))

		recs, err := s.FindEntries(ctx, docsearch.EntryFilter{})

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Empty(t, recs[0].Entry.Keywords)
	})
}

func TestEntryService_DeleteEntriesByCategory(t *testing.T) {
	t.Parallel()

	s := sqlite.NewEntryService(mustOpenDB(t))
	ctx := context.Background()

	require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
		Entry: docsearch.Entry{Title: "A", URL: "/a", Category: "guides"},
	}))
	require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
		Entry: docsearch.Entry{Title: "B", URL: "/b", Category: "guides"},
	}))
	require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
		Entry: docsearch.Entry{Title: "C", URL: "/c", Category: "api"},
	}))

	n, err := s.DeleteEntriesByCategory(ctx, "guides")

	require.NoError(t, err)
	assert.Equal(t, 2, n)

	recs, err := s.FindEntries(ctx, docsearch.EntryFilter{})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "C", recs[0].Entry.Title)
}

func TestCorpusLoader(t *testing.T) {
	t.Parallel()

	t.Run("loads all entries into corpus order", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry:    docsearch.Entry{Title: "A", URL: "/a", Category: "guides"},
			Position: 0,
		}))
		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry:    docsearch.Entry{Title: "B", URL: "/b", Category: "guides"},
			Position: 1,
		}))

		entries, err := sqlite.NewCorpusLoader(s).LoadEntries(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "/a", entries[0].URL)
		assert.Equal(t, "/b", entries[1].URL)
	})

	t.Run("empty store yields an empty corpus, not an error", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))

		entries, err := sqlite.NewCorpusLoader(s).LoadEntries(context.Background())

		require.NoError(t, err)
		assert.Empty(t, entries)

		searcher := docsearch.NewSearcher(docsearch.NewCorpus(entries))
		assert.Empty(t, searcher.Search("anything"))
	})

	t.Run("restricts to a category when set", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewEntryService(mustOpenDB(t))
		ctx := context.Background()

		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry: docsearch.Entry{Title: "A", URL: "/a", Category: "guides"},
		}))
		require.NoError(t, s.CreateEntry(ctx, &docsearch.EntryRecord{
			Entry: docsearch.Entry{Title: "B", URL: "/b", Category: "api"},
		}))

		loader := sqlite.NewCorpusLoader(s)
		loader.Category = "api"

		entries, err := loader.LoadEntries(ctx)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "/b", entries[0].URL)
	})
}
