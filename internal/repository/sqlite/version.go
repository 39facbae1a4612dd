package sqlite

import (
	"context"
	"fmt"
	"time"
)

// The schema version history. Each successful upgrade step appends one
// row; rows are never updated or deleted.
const versionTable = "db_version"

const dateFormat = "2006-01-02"

// CurrentVersion derives the current schema version from the version
// history: the version of the row with the latest date, ties broken by
// the highest version on that date. A database without the history table,
// or with an empty one, is at version 0.
func (db *DB) CurrentVersion(ctx context.Context) (int, error) {
	_, found, err := db.QueryScalar(ctx,
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name = '`+versionTable+`'`)
	if err != nil {
		return 0, fmt.Errorf("check version table: %w", err)
	}
	if !found {
		return 0, nil
	}

	value, found, err := db.QueryScalar(ctx,
		`SELECT version FROM `+versionTable+` ORDER BY date DESC, version DESC LIMIT 1`)
	if err != nil {
		return 0, fmt.Errorf("read current version: %w", err)
	}
	if !found {
		return 0, nil
	}

	version, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: version column holds %T, want integer", ErrQuery, value)
	}
	return int(version), nil
}

// SetVersion appends a row to the version history. A zero date means
// today. Versions below 1 are rejected without touching the store.
func (db *DB) SetVersion(ctx context.Context, version int, date time.Time) error {
	if version < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidVersion, version)
	}
	if date.IsZero() {
		date = time.Now()
	}

	err := db.Execute(ctx,
		`INSERT INTO `+versionTable+` (version, date) VALUES (:version, :date)`,
		map[string]any{
			"version": version,
			"date":    date.Format(dateFormat),
		})
	if err != nil {
		return fmt.Errorf("record version %d: %w", version, err)
	}
	return nil
}
