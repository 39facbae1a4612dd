package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// upgradeStep transforms the schema from version target-1 to target. Apply
// functions guard their DDL with IF NOT EXISTS so a step is safe to
// re-attempt after a cleanly rolled back failure.
type upgradeStep struct {
	target int
	apply  func(ctx context.Context, db *DB) error
}

// upgradeSteps is ordered by target version. A database at version N only
// ever attempts target N+1 next; adding a version is an append here plus
// its apply function.
var upgradeSteps = []upgradeStep{
	{target: 1, apply: createVersionTable},
	{target: 2, apply: createAssetTables},
	{target: 3, apply: createUserTable},
}

// Upgrade brings the database from its current schema version to the
// latest defined one, one transactional step at a time. A failed step is
// rolled back, leaving the database exactly at the version it had before
// the step, and aborts the whole upgrade; no subsequent steps are
// attempted. Running Upgrade on an up-to-date database performs zero
// steps and succeeds.
func (db *DB) Upgrade(ctx context.Context) error {
	return db.upgrade(ctx, upgradeSteps)
}

func (db *DB) upgrade(ctx context.Context, steps []upgradeStep) error {
	current, err := db.CurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, step := range steps {
		if step.target <= current {
			continue
		}
		if err := db.applyStep(ctx, step); err != nil {
			return fmt.Errorf("upgrade to schema version %d: %w", step.target, err)
		}
		slog.Info("schema upgraded", "version", step.target)
	}
	return nil
}

// applyStep runs one step and its version record in a single transaction.
func (db *DB) applyStep(ctx context.Context, step upgradeStep) error {
	if err := db.Begin(ctx); err != nil {
		return err
	}
	if err := step.apply(ctx, db); err != nil {
		return db.abortStep(step.target, err)
	}
	if err := db.SetVersion(ctx, step.target, time.Time{}); err != nil {
		return db.abortStep(step.target, err)
	}
	return db.Commit()
}

// abortStep rolls back after a failed step. A rollback failure is logged
// and recorded but never masks cause, which remains the reported error.
func (db *DB) abortStep(target int, cause error) error {
	if err := db.Rollback(); err != nil {
		slog.Error("rollback after failed upgrade step", "version", target, "error", err)
	}
	return cause
}

func createVersionTable(ctx context.Context, db *DB) error {
	if err := db.Execute(ctx, `
		CREATE TABLE IF NOT EXISTS `+versionTable+` (
			version INTEGER NOT NULL,
			date TEXT NOT NULL
		)`, nil); err != nil {
		return err
	}
	return db.Execute(ctx,
		`CREATE INDEX IF NOT EXISTS idx_db_version_date ON `+versionTable+` (date)`, nil)
}

func createAssetTables(ctx context.Context, db *DB) error {
	if err := db.Execute(ctx, `
		CREATE TABLE IF NOT EXISTS asset_type (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`, nil); err != nil {
		return err
	}
	if err := db.Execute(ctx, `
		CREATE TABLE IF NOT EXISTS asset (
			id INTEGER PRIMARY KEY,
			asset_type_id INTEGER NOT NULL REFERENCES asset_type (id),
			name TEXT NOT NULL,
			amount REAL NOT NULL,
			currency TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, nil); err != nil {
		return err
	}
	return db.Execute(ctx,
		`CREATE INDEX IF NOT EXISTS idx_asset_asset_type_id ON asset (asset_type_id)`, nil)
}

func createUserTable(ctx context.Context, db *DB) error {
	return db.Execute(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`, nil)
}
