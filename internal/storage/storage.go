// Package storage defines the Storage interface — a contract that any
// record source must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The interactive UI should not know or care whether records come from
// a plain JSON file or a SQLite database. By depending only on this
// interface:
//
//   - Switching backends = implement the interface for the new source,
//     change one line in main.go. Zero UI changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real files or databases needed for unit tests.
package storage

import (
	"errors"

	"github.com/abhisakh/Branching-Out/internal/types"
)

// Sentinel errors classifying load failures. Backends wrap these with
// fmt.Errorf("...: %w", ...) so callers can test with errors.Is while
// still seeing the full context in the message.
//
// Both conditions are recoverable: a backend that returns one of these
// also returns an empty (non-nil) slice, and the program degrades to a
// "no matches" style outcome instead of crashing.
var (
	// ErrFileMissing means the dataset file does not exist.
	ErrFileMissing = errors.New("dataset file is missing")

	// ErrInvalidJSON means the dataset exists but could not be decoded.
	// There is no partial-parse recovery — one bad byte discards the
	// whole document.
	ErrInvalidJSON = errors.New("dataset is not valid JSON")
)

// Storage is the record-source contract.
// Any concrete type that implements this method automatically satisfies
// the interface — Go does this implicitly (no "implements" keyword).
type Storage interface {
	// GetUsers returns every user record in dataset order.
	// It re-reads the underlying source on every call, so consecutive
	// filter runs always observe the current state on disk.
	// Returns an empty slice (never nil) together with a wrapped
	// sentinel error when the source is missing or undecodable.
	GetUsers() ([]types.User, error)
}
