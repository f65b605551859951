// Package store holds one gorm-backed store per collection. Stores are
// constructed once at startup and injected into handlers, so tests can
// run the full stack against an in-memory database.
package store

import "errors"

var ErrNotFound = errors.New("not found")
