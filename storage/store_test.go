package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestCollection(t *testing.T) (*Collection[record], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	return NewCollection[record](path), path
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	c, _ := newTestCollection(t)
	require.Empty(t, c.Load())
}

func TestLoad_CorruptFile(t *testing.T) {
	t.Parallel()

	c, path := newTestCollection(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	require.Empty(t, c.Load())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Parallel()

	c, path := newTestCollection(t)
	records := []record{{ID: 1, Name: "uno"}, {ID: 2, Name: "dos"}}

	require.NoError(t, c.Save(records))
	require.Equal(t, records, c.Load())

	// The file is a pretty-printed JSON array.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "\n  {")
}

func TestSave_EmptyWritesArray(t *testing.T) {
	t.Parallel()

	c, path := newTestCollection(t)
	require.NoError(t, c.Save(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestSave_NoTempLeftover(t *testing.T) {
	t.Parallel()

	c, path := newTestCollection(t)
	require.NoError(t, c.Save([]record{{ID: 1, Name: "uno"}}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestUpdate_AppliesMutation(t *testing.T) {
	t.Parallel()

	c, _ := newTestCollection(t)
	require.NoError(t, c.Save([]record{{ID: 1, Name: "uno"}}))

	err := c.Update(func(records []record) ([]record, error) {
		return append(records, record{ID: 2, Name: "dos"}), nil
	})
	require.NoError(t, err)
	require.Len(t, c.Load(), 2)
}

func TestUpdate_ErrorLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	c, _ := newTestCollection(t)
	original := []record{{ID: 1, Name: "uno"}}
	require.NoError(t, c.Save(original))

	boom := errors.New("boom")
	err := c.Update(func(records []record) ([]record, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, original, c.Load())
}
