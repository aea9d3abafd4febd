// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values allow higher layers such as handlers
// to distinguish between failure scenarios: a duplicate email on signup is
// reported differently from a generic store failure, and a missing blog
// becomes a 404 page rather than a 500.
package repository

import "errors"

// ErrEmailExists is returned when a user cannot be created because the
// email address is already taken.  Handlers translate this into the
// "Email already exists" signup message.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a requested entity does not exist.
// Handlers translate this into a 404 page.
var ErrNotFound = errors.New("not found")
