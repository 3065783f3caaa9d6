package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonia/internal/coordinate"
	"harmonia/internal/harmony"
	"harmonia/internal/report"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRun(root string, records ...harmony.Record) *report.Run {
	run := report.NewRun(root)
	byFile := map[string][]harmony.Record{}
	for _, rec := range records {
		byFile[rec.File] = append(byFile[rec.File], rec)
	}
	for path, recs := range byFile {
		run.Add(report.Assemble(path, recs))
	}
	return run
}

func TestSaveAndLatestRun(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := testRun("/proj",
		harmony.Record{
			Name:      "get_user",
			File:      "a.py",
			Line:      4,
			Intent:    coordinate.Coordinate{0, 0, 0, 1},
			Execution: coordinate.Coordinate{0, 0, 0, 1},
			Distance:  0,
			Severity:  harmony.Harmonious,
		},
		harmony.Record{
			Name:      "get_account",
			File:      "a.py",
			Line:      9,
			Intent:    coordinate.Coordinate{0, 0, 0, 1},
			Execution: coordinate.Coordinate{0, 0, 1, 0},
			Distance:  1.4142135623730951,
			Severity:  harmony.Critical,
		},
	)

	id, err := store.SaveRun(ctx, run)
	require.NoError(t, err)
	assert.Positive(t, id)

	loaded, err := store.LatestRun(ctx)
	require.NoError(t, err)

	assert.Equal(t, id, loaded.ID)
	assert.Equal(t, "/proj", loaded.Root)
	assert.Equal(t, 1, loaded.Files)
	assert.Equal(t, 2, loaded.Total)
	assert.Equal(t, 1, loaded.Summary.Critical)
	assert.Equal(t, 1, loaded.Summary.Harmonious)

	require.Len(t, loaded.Records, 2)
	first := loaded.Records[0]
	assert.Equal(t, "get_user", first.Name)
	assert.Equal(t, harmony.Harmonious, first.Severity)
	assert.Equal(t, coordinate.Coordinate{0, 0, 0, 1}, first.Intent)

	second := loaded.Records[1]
	assert.Equal(t, "get_account", second.Name)
	assert.Equal(t, harmony.Critical, second.Severity)
	assert.InDelta(t, 1.4142135623730951, second.Distance, 1e-12)
}

func TestLatestRunPicksNewest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.SaveRun(ctx, testRun("/old"))
	require.NoError(t, err)
	_, err = store.SaveRun(ctx, testRun("/new"))
	require.NoError(t, err)

	loaded, err := store.LatestRun(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/new", loaded.Root)
}

func TestLatestRunEmpty(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LatestRun(context.Background())
	assert.ErrorIs(t, err, ErrNoRuns)
}
