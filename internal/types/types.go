// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// storage backends, filters, and the UI can all import types without
// depending on each other.
package types

// User represents one user record from the dataset.
//
// Struct tags serve three purposes:
//
//  1. json:"..."  — controls how the field maps to keys in users.json
//     (lowercase names match the dataset's keys).
//
//  2. db:"..."    — column names used by sqlx when scanning rows from
//     the SQLite backend.
//
//  3. validate:"..." — rules checked by the go-playground/validator
//     package at load time. Every record the filter stage sees is
//     guaranteed to have a name and a non-negative age; id and email
//     are optional and may be zero-valued.
type User struct {
	ID    int    `json:"id,omitempty"    db:"id"`
	Name  string `json:"name"            db:"name"  validate:"required"`
	Age   int    `json:"age"             db:"age"   validate:"gte=0"`
	Email string `json:"email,omitempty" db:"email"`
}

// HasEmail reports whether the record carries an email address.
// Records without one are displayed as "N/A" and never match an
// email filter.
func (u User) HasEmail() bool {
	return u.Email != ""
}
