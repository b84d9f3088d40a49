package store

import "errors"

// ErrNotFound is returned when a targeted update or delete matches no row.
// Callers that prefer the no-op interpretation can errors.Is against it.
var ErrNotFound = errors.New("not found")
