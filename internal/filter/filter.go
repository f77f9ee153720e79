// Package filter contains the match predicates applied to the loaded
// dataset. Every function is a pure, order-preserving single pass over
// the input slice: no indexing, no early exit (except the id lookup,
// where ids are assumed unique), no mutation of the input.
package filter

import (
	"strings"

	"github.com/abhisakh/Branching-Out/internal/types"
)

// ByID returns the first record whose id equals id, in dataset order.
// The boolean reports whether a match was found. Ids are assumed
// unique, so later duplicates are deliberately ignored.
func ByID(users []types.User, id int) (types.User, bool) {
	for _, u := range users {
		if u.ID == id {
			return u, true
		}
	}
	return types.User{}, false
}

// ByName returns every record whose name matches, case-insensitively.
// strings.EqualFold compares without allocating the lowercase copies
// that ToLower-and-compare would.
func ByName(users []types.User, name string) []types.User {
	matched := make([]types.User, 0)
	for _, u := range users {
		if strings.EqualFold(u.Name, name) {
			matched = append(matched, u)
		}
	}
	return matched
}

// ByAge returns every record with exactly the given age. The caller is
// responsible for rejecting negative or non-numeric input before the
// value reaches this function.
func ByAge(users []types.User, age int) []types.User {
	matched := make([]types.User, 0)
	for _, u := range users {
		if u.Age == age {
			matched = append(matched, u)
		}
	}
	return matched
}

// ByEmail returns every record whose email matches, case-insensitively.
// Records without an email never match, regardless of the query.
func ByEmail(users []types.User, email string) []types.User {
	matched := make([]types.User, 0)
	for _, u := range users {
		if u.HasEmail() && strings.EqualFold(u.Email, email) {
			matched = append(matched, u)
		}
	}
	return matched
}
