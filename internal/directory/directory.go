// Package directory holds an in-memory user roster with lookup by ID.
package directory

import (
	"database/sql"
)

// User is one user entry, keyed by field name. Entries carry at least an
// "id" field of a comparable type.
type User map[string]any

// Directory owns an ordered user sequence and a storage handle. The handle
// is retained for the lifetime of the directory but no operation in this
// package ever touches it; population and persistence live with the caller.
type Directory struct {
	// Users is the roster, in insertion order. Callers populate it
	// directly; the directory itself only reads it.
	Users []User

	store *sql.DB
}

// New returns a Directory with an empty roster bound to the given storage
// handle. A nil handle is accepted since nothing here dereferences it.
func New(store *sql.DB) *Directory {
	return &Directory{store: store}
}

// Store returns the handle the directory was constructed with.
func (d *Directory) Store() *sql.DB { return d.store }

// GetUser scans the roster in order and returns the first user whose "id"
// field equals id, under the equality semantics of the identifier's type.
// The second return is false when no user matches; absence is an expected
// outcome, not an error.
func (d *Directory) GetUser(id any) (User, bool) {
	for _, u := range d.Users {
		if u["id"] == id {
			return u, true
		}
	}
	return nil, false
}
