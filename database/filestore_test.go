package database

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreListMissingDirectory(t *testing.T) {
	store := NewFileStore(memfs.New(), zerolog.Nop())

	assert.Empty(t, store.List("/nowhere"))
}

func TestFileStoreListFiltersNonRecords(t *testing.T) {
	fs := memfs.New()
	store := NewFileStore(fs, zerolog.Nop())

	require.NoError(t, util.WriteFile(fs, "/data/1.json", []byte("{}"), 0o644))
	require.NoError(t, util.WriteFile(fs, "/data/readme.txt", []byte("x"), 0o644))
	require.NoError(t, fs.MkdirAll("/data/sub.json", 0o755))

	assert.Equal(t, []string{"1.json"}, store.List("/data"))
}

func TestFileStoreReadAbsenceAndCorruption(t *testing.T) {
	fs := memfs.New()
	store := NewFileStore(fs, zerolog.Nop())

	var doc map[string]any
	assert.False(t, store.Read("/data", "missing.json", &doc))

	require.NoError(t, util.WriteFile(fs, "/data/bad.json", []byte("{oops"), 0o644))
	assert.False(t, store.Read("/data", "bad.json", &doc))
}

func TestFileStoreWriteReadRoundTrip(t *testing.T) {
	store := NewFileStore(memfs.New(), zerolog.Nop())

	in := map[string]any{"id": "1", "name": "Acme"}
	require.NoError(t, store.Write("/data", "1.json", in))
	assert.True(t, store.Exists("/data", "1.json"))

	var out map[string]any
	require.True(t, store.Read("/data", "1.json", &out))
	assert.Equal(t, "Acme", out["name"])
}

func TestFileStoreDeleteIdempotent(t *testing.T) {
	store := NewFileStore(memfs.New(), zerolog.Nop())

	require.NoError(t, store.Write("/data", "1.json", map[string]any{"id": "1"}))
	require.NoError(t, store.Delete("/data", "1.json"))
	assert.False(t, store.Exists("/data", "1.json"))

	// Deleting again still succeeds
	require.NoError(t, store.Delete("/data", "1.json"))
}
