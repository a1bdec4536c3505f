// Package store persists event settings as key/value pairs.
package store

import "context"

// Store reads and writes setting values. Get returns sentinel.ErrNotFound
// for keys that were never set.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
