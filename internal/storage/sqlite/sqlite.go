// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using jmoiron/sqlx on top of database/sql.
//
// WHY SQLite FOR A JSON TOOL?
// ───────────────────────────
// The JSON file is fine for a handful of records, but the same tool is
// also used against datasets exported from admin panels. The sqlite
// backend keeps those in a single .db file — no server process, no
// network — and is seeded once from users.json when the table is empty.
//
// sqlx adds struct scanning on top of database/sql: Select fills a
// []types.User directly from the db:"..." tags instead of a manual
// rows.Next / rows.Scan loop.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"fmt"

	"github.com/abhisakh/Branching-Out/internal/types"

	"github.com/jmoiron/sqlx"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete sqlite-backed store. It holds a *sqlx.DB,
// which wraps the connection pool managed by database/sql and is safe
// for concurrent use.
type SQLite struct {
	db *sqlx.DB
}

// New opens the SQLite database at path, creates the users table if it
// does not already exist, and returns a ready-to-use store.
//
// Naming convention: New() acts as a constructor. Go has no
// constructors, so the community convention is a package-level New()
// that returns an initialised instance and an error.
func New(path string) (*SQLite, error) {
	// sqlx.Connect = sql.Open + Ping, so a bad path fails here rather
	// than on the first query.
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	//
	// Schema mirrors the JSON record shape. email defaults to the empty
	// string: absence of an email is data, not an error.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT    NOT NULL,
			age   INTEGER NOT NULL,
			email TEXT    NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Seed inserts the given records into an EMPTY users table and returns
// how many rows it wrote. A non-empty table is left untouched and Seed
// returns 0 — the tool is read-only once a dataset exists, so seeding
// must never duplicate or overwrite records.
//
// Records that carry an id keep it; records without one (id == 0) get
// an auto-incremented id from SQLite.
func (s *SQLite) Seed(users []types.User) (int64, error) {
	var count int64
	if err := s.db.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("sqlite.Seed: count: %w", err)
	}
	if count > 0 || len(users) == 0 {
		return 0, nil
	}

	// One transaction for the whole seed: either the full dataset lands
	// or none of it does.
	tx, err := s.db.Beginx()
	if err != nil {
		return 0, fmt.Errorf("sqlite.Seed: begin: %w", err)
	}
	defer tx.Rollback() // no-op after a successful Commit

	var inserted int64
	for _, u := range users {
		if u.ID != 0 {
			_, err = tx.NamedExec(
				"INSERT INTO users (id, name, age, email) VALUES (:id, :name, :age, :email)", u)
		} else {
			_, err = tx.NamedExec(
				"INSERT INTO users (name, age, email) VALUES (:name, :age, :email)", u)
		}
		if err != nil {
			return 0, fmt.Errorf("sqlite.Seed: insert %q: %w", u.Name, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite.Seed: commit: %w", err)
	}

	return inserted, nil
}

// GetUsers returns every user row in insertion order.
// sqlx.Select runs the query and scans all rows into the slice using
// the db struct tags, replacing the usual cursor loop.
func (s *SQLite) GetUsers() ([]types.User, error) {
	// Pre-allocate an empty (non-nil) slice so callers can range over
	// the result without a nil check even on error paths.
	users := make([]types.User, 0)

	// Explicit column list — SELECT * would silently break scan order
	// if a column is ever added.
	err := s.db.Select(&users, "SELECT id, name, age, email FROM users ORDER BY rowid")
	if err != nil {
		return []types.User{}, fmt.Errorf("sqlite.GetUsers: select: %w", err)
	}

	return users, nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	return s.db.Close()
}
