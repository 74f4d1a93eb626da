package identiberry

import "errors"

// ErrNotFound is returned by Directory.Lookup when no identity has
// been published for the requested account address.
var ErrNotFound = errors.New("validator identity not found")
