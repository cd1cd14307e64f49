package sqlite

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldworks/contigctl/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(name string) SessionRecord {
	now := time.Now()
	return SessionRecord{
		SessionID:     uuid.NewString(),
		Name:          name,
		StructurePath: "/data/" + name + ".pdb",
		Contigs:       "A2-15/B1-8",
		InpaintSeq:    "A9-12",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	_, err := Open(types.Config{Backend: "postgres", DataDir: t.TempDir()})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	rec := testRecord("4hhb")

	require.NoError(t, store.Put(rec))

	got, err := store.Get(rec.SessionID)
	require.NoError(t, err)
	assert.Equal(t, rec.SessionID, got.SessionID)
	assert.Equal(t, rec.Name, got.Name)
	assert.Equal(t, rec.StructurePath, got.StructurePath)
	assert.Equal(t, rec.Contigs, got.Contigs)
	assert.Equal(t, rec.InpaintSeq, got.InpaintSeq)
	assert.WithinDuration(t, rec.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestPutUpdatesExisting(t *testing.T) {
	store := openTestStore(t)
	rec := testRecord("4hhb")
	require.NoError(t, store.Put(rec))

	rec.Contigs = "A2-20"
	rec.InpaintSeq = ""
	rec.UpdatedAt = rec.UpdatedAt.Add(time.Second)
	require.NoError(t, store.Put(rec))

	got, err := store.Get(rec.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "A2-20", got.Contigs)
	assert.Empty(t, got.InpaintSeq)

	records, err := store.List()
	require.NoError(t, err)
	assert.Len(t, records, 1, "put with the same ID must not create a second row")
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(uuid.NewString())
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestLatestAndList(t *testing.T) {
	store := openTestStore(t)

	older := testRecord("older")
	older.UpdatedAt = time.Now().Add(-time.Hour)
	newer := testRecord("newer")

	require.NoError(t, store.Put(older))
	require.NoError(t, store.Put(newer))

	latest, err := store.Latest()
	require.NoError(t, err)
	assert.Equal(t, newer.SessionID, latest.SessionID)

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, newer.SessionID, records[0].SessionID)
	assert.Equal(t, older.SessionID, records[1].SessionID)
}

func TestLatestEmptyStore(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Latest()
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	rec := testRecord("gone")
	require.NoError(t, store.Put(rec))

	require.NoError(t, store.Delete(rec.SessionID))
	_, err := store.Get(rec.SessionID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	assert.ErrorIs(t, store.Delete(rec.SessionID), types.ErrNotFound)
}

func TestCloseIdempotent(t *testing.T) {
	store, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
