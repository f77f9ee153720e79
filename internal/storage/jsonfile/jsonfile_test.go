package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisakh/Branching-Out/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetUsers(t *testing.T) {
	t.Run("returns records in file order", func(t *testing.T) {
		path := writeDataset(t, `[
			{"id": 1, "name": "Alice", "age": 25, "email": "alice@example.com"},
			{"id": 2, "name": "Bob", "age": 30}
		]`)

		users, err := New(path).GetUsers()
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Alice", users[0].Name)
		assert.Equal(t, "Bob", users[1].Name)
		assert.False(t, users[1].HasEmail())
	})

	t.Run("missing file yields ErrFileMissing and an empty usable slice", func(t *testing.T) {
		users, err := New(filepath.Join(t.TempDir(), "nope.json")).GetUsers()
		require.ErrorIs(t, err, storage.ErrFileMissing)
		require.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("malformed JSON yields ErrInvalidJSON and discards everything", func(t *testing.T) {
		path := writeDataset(t, `[{"name": "Alice", "age": 25},`)

		users, err := New(path).GetUsers()
		require.ErrorIs(t, err, storage.ErrInvalidJSON)
		assert.Empty(t, users)
	})

	t.Run("records violating the invariant are dropped, siblings survive", func(t *testing.T) {
		path := writeDataset(t, `[
			{"name": "", "age": 25},
			{"name": "Bob", "age": -3},
			{"name": "Charlie", "age": 25}
		]`)

		users, err := New(path).GetUsers()
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Charlie", users[0].Name)
	})

	t.Run("each call re-reads the file", func(t *testing.T) {
		path := writeDataset(t, `[{"name": "Alice", "age": 25}]`)
		store := New(path)

		users, err := store.GetUsers()
		require.NoError(t, err)
		require.Len(t, users, 1)

		require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o644))

		users, err = store.GetUsers()
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
