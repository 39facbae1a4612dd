package domain

import "context"

// Database defines lifecycle operations for the underlying database.
// The implementation owns its own schema upgrade strategy, so the
// entire backend stays swappable.
type Database interface {
	Upgrade(ctx context.Context) error
	Close() error
}
