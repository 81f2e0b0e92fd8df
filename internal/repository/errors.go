// Package repository defines sentinel error values shared by the
// resource repositories.  Handlers compare against these values to
// distinguish a missing row from an infrastructure failure, and
// translate them into HTTP 404 responses.
package repository

import "errors"

// ErrMovieNotFound is returned when no movie row matches the requested id.
var ErrMovieNotFound = errors.New("movie not found")

// ErrDirectorNotFound is returned when no director row matches the requested id.
var ErrDirectorNotFound = errors.New("director not found")

// ErrGenreNotFound is returned when no genre row matches the requested id.
var ErrGenreNotFound = errors.New("genre not found")
