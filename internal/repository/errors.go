// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios. For example,
// ErrProfileExists indicates that the caller already owns a profile row of
// the requested type, while ErrConflict signals that an operation cannot
// proceed due to existing dependent records (e.g. deleting a user whose
// company still has employees).
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a referenced entity does not exist. Handlers
// should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state. Handlers should translate this into an
// HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned when a user registration collides with an
// existing email address.
var ErrEmailExists = errors.New("email already exists")

// ErrProfileExists is returned when the caller already owns a profile row
// of the requested type. Registering a profile is idempotent-guarded: the
// second attempt always fails with this error regardless of payload.
var ErrProfileExists = errors.New("profile already registered for this user")

// ErrDuplicate is returned when an insert violates a unique key such as a
// company's cnpj or a professional's registration number.
var ErrDuplicate = errors.New("duplicate value for unique field")

// isDuplicateKey reports whether err is a MySQL duplicate-entry error (1062).
func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
