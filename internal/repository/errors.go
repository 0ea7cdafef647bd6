// Package repository implements data access over database/sql with
// hand-written SQL. Sentinel errors let handlers translate failure
// scenarios to HTTP codes without inspecting driver errors.
package repository

import "errors"

// ErrNotFound is returned when an id or email does not resolve to a row.
// Handlers translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when an insert would duplicate a login email.
// Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrForbidden is returned when the caller attempts an operation on a
// resource owned by someone else, e.g. a vendor editing another vendor's
// listing. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")
