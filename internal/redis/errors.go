package redis

import "errors"

// ErrNotFound is returned when a key has expired or never existed.
var ErrNotFound = errors.New("not found")
