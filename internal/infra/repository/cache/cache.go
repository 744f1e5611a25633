// Package cache defines the contract shared by cache implementations.
package cache

import "errors"

// ErrCacheMiss is returned when a key is absent or its entry has expired.
var ErrCacheMiss = errors.New("cache: key not found")
