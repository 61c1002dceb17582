package history_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workoutprogress/internal/history"
	"github.com/2beens/workoutprogress/internal/workouts"
)

func TestNewDiskStorage(t *testing.T) {
	_, err := history.NewDiskStorage("")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")
	storage, err := history.NewDiskStorage(path)
	require.NoError(t, err)
	assert.Equal(t, path, storage.Path())
	assert.DirExists(t, filepath.Dir(path))

	// a directory where the history file should be
	_, err = history.NewDiskStorage(filepath.Dir(path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")

	// an existing history file is reused
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))
	_, err = history.NewDiskStorage(path)
	assert.NoError(t, err)
}

func TestDiskStorage_ReadWrite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.json")
	storage, err := history.NewDiskStorage(path)
	require.NoError(t, err)

	_, err = storage.Read(ctx)
	assert.ErrorIs(t, err, history.ErrSlotEmpty)

	require.NoError(t, storage.Write(ctx, []byte(`[1]`)))
	require.NoError(t, storage.Write(ctx, []byte(`[1, 2]`)))

	payload, err := storage.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, `[1, 2]`, string(payload))

	// no temp files left behind
	files, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "history.json", files[0].Name())
	assert.NoError(t, storage.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestDiskStorage_WriteFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	storage, err := history.NewDiskStorage(filepath.Join(dir, "history.json"))
	require.NoError(t, err)
	require.NoError(t, storage.Write(ctx, []byte(`[]`)))

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, storage.Write(ctx, []byte(`[1]`)))
}

func TestDiskStorage_StoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.json")

	storage, err := history.NewDiskStorage(path)
	require.NoError(t, err)
	store, err := history.NewStore(storage, nil)
	require.NoError(t, err)

	entries := []workouts.Entry{
		{Week: 1, Day: 1, Pushups: 20, Burpees: 10, RPE: 6, Notes: "easy", Date: "2024-01-01"},
		{Week: 1, Day: 2, Pushups: 22, Burpees: 11, RPE: 7, Date: "2024-01-03"},
		{Week: 1, Day: 3, Pushups: 25, Burpees: 12, RPE: 8, Notes: "tough one", Date: "2024-01-05"},
	}
	for _, e := range entries {
		require.NoError(t, store.Upsert(ctx, e))
	}
	require.NoError(t, store.Close())

	// a new store over the same file sees the same history
	reopened, err := history.NewDiskStorage(path)
	require.NoError(t, err)
	store, err = history.NewStore(reopened, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, entries, store.Load(ctx))
}
