package repositories

import "errors"

// ErrNotFound is wrapped into every lookup miss so handlers can map it
// to a 404 with errors.Is, regardless of entity type.
var ErrNotFound = errors.New("record not found")
