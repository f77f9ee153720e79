// Package jsonfile provides the default storage backend: a plain JSON
// document on disk, decoded in full on every read.
//
// The file is expected to contain a JSON array of user objects, e.g.
//
//	[
//	    {"id": 1, "name": "Alice", "age": 25, "email": "alice@example.com"},
//	    {"id": 2, "name": "Bob",   "age": 30}
//	]
//
// Decoding uses goccy/go-json, a drop-in replacement for encoding/json.
package jsonfile

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/abhisakh/Branching-Out/internal/storage"
	"github.com/abhisakh/Branching-Out/internal/types"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// JSONFile reads user records from a single JSON file. It holds no open
// handles between calls — the file is opened, read, and closed inside
// each GetUsers call, so there is nothing to close or invalidate when
// the file changes on disk.
type JSONFile struct {
	path     string
	validate *validator.Validate
}

// New returns a store reading from the given path. The path is not
// checked here; a missing file surfaces as storage.ErrFileMissing on
// the first read, which the caller treats as an empty dataset.
func New(path string) *JSONFile {
	return &JSONFile{
		path:     path,
		validate: validator.New(),
	}
}

// GetUsers decodes the whole document and returns the records in file
// order. Failure modes, both recoverable:
//
//   - file absent        → empty slice + wrapped storage.ErrFileMissing
//   - undecodable JSON   → empty slice + wrapped storage.ErrInvalidJSON
//
// Records that violate the dataset invariant (missing name, negative
// age) are dropped with a warning so the filter stage only ever sees
// well-formed records. Valid siblings in the same document survive.
func (j *JSONFile) GetUsers() ([]types.User, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.User{}, fmt.Errorf("jsonfile: %s: %w", j.path, storage.ErrFileMissing)
		}
		return []types.User{}, fmt.Errorf("jsonfile: read %s: %w", j.path, err)
	}

	var decoded []types.User
	if err := json.Unmarshal(data, &decoded); err != nil {
		return []types.User{}, fmt.Errorf("jsonfile: decode %s: %w", j.path, storage.ErrInvalidJSON)
	}

	users := make([]types.User, 0, len(decoded))
	for _, u := range decoded {
		if err := j.validate.Struct(u); err != nil {
			slog.Warn("dropping invalid record",
				slog.String("name", u.Name),
				slog.Int("age", u.Age),
				slog.String("reason", err.Error()),
			)
			continue
		}
		users = append(users, u)
	}

	return users, nil
}
