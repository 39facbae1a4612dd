package sqlite_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/olivertwistor/financial-assets-manager/internal/domain"
	"github.com/olivertwistor/financial-assets-manager/internal/repository/sqlite"
)

// Verify that *sqlite.DB implements domain.Database at compile time.
var _ domain.Database = (*sqlite.DB)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}
	if db.Path() != dbPath {
		t.Fatalf("expected path %s, got %s", dbPath, db.Path())
	}

	// Verify foreign keys are enabled.
	value, found, err := db.QueryScalar(context.Background(), "PRAGMA foreign_keys")
	if err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if !found || value.(int64) != 1 {
		t.Fatalf("expected foreign_keys=1, got %v (found=%v)", value, found)
	}
}

func TestOpenBadPath(t *testing.T) {
	// A directory cannot be opened as a database file.
	dir := t.TempDir()

	_, err := sqlite.Open(dir)
	if !errors.Is(err, sqlite.ErrConnection) {
		t.Fatalf("expected ErrConnection, got %v", err)
	}
}

func TestExecuteNamedParams(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Execute(ctx, "CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT)", nil); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if err := db.Execute(ctx, "INSERT INTO note (body) VALUES (:body)",
		map[string]any{"body": "hello"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	value, found, err := db.QueryScalar(ctx, "SELECT body FROM note")
	if err != nil {
		t.Fatalf("QueryScalar: %v", err)
	}
	if !found || value.(string) != "hello" {
		t.Fatalf("expected hello, got %v (found=%v)", value, found)
	}
}

func TestExecuteMalformedSQL(t *testing.T) {
	db := newTestDB(t)

	err := db.Execute(context.Background(), "CREAT TABLE broken (id INTEGER)", nil)
	if !errors.Is(err, sqlite.ErrStatement) {
		t.Fatalf("expected ErrStatement, got %v", err)
	}
	if !sqlite.IsDatabaseError(err) {
		t.Fatal("expected IsDatabaseError to report true")
	}
}

func TestExecuteConstraintViolation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Execute(ctx, "CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT NOT NULL)", nil); err != nil {
		t.Fatalf("create table: %v", err)
	}

	err := db.Execute(ctx, "INSERT INTO note (body) VALUES (NULL)", nil)
	if !errors.Is(err, sqlite.ErrExecution) {
		t.Fatalf("expected ErrExecution, got %v", err)
	}
}

func TestLastInsertedID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Execute(ctx, "CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT)", nil); err != nil {
		t.Fatalf("create table: %v", err)
	}

	for want := int64(1); want <= 3; want++ {
		if err := db.Execute(ctx, "INSERT INTO note (body) VALUES (:body)",
			map[string]any{"body": "row"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if got := db.LastInsertedID(); got != want {
			t.Fatalf("expected last insert id %d, got %d", want, got)
		}
	}
}

func TestQueryScalarThreeWay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Empty result set: no row, no error.
	value, found, err := db.QueryScalar(ctx, "SELECT 1 WHERE 0")
	if err != nil {
		t.Fatalf("empty result should not error: %v", err)
	}
	if found || value != nil {
		t.Fatalf("expected no row, got %v (found=%v)", value, found)
	}

	// A legitimate zero value is a row, not an error and not "no row".
	value, found, err = db.QueryScalar(ctx, "SELECT 0")
	if err != nil {
		t.Fatalf("QueryScalar: %v", err)
	}
	if !found || value.(int64) != 0 {
		t.Fatalf("expected zero value row, got %v (found=%v)", value, found)
	}

	// Malformed query: an error, not "no row".
	_, _, err = db.QueryScalar(ctx, "SELEC 1")
	if !errors.Is(err, sqlite.ErrQuery) {
		t.Fatalf("expected ErrQuery, got %v", err)
	}
}

func TestBeginTwiceFails(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	err := db.Begin(ctx)
	if !errors.Is(err, sqlite.ErrTransaction) {
		t.Fatalf("expected ErrTransaction on second Begin, got %v", err)
	}

	// The original transaction is still usable.
	if err := db.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
}

func TestCommitWithoutTransaction(t *testing.T) {
	db := newTestDB(t)

	if err := db.Commit(); !errors.Is(err, sqlite.ErrTransaction) {
		t.Fatalf("expected ErrTransaction, got %v", err)
	}
	if err := db.Rollback(); !errors.Is(err, sqlite.ErrTransaction) {
		t.Fatalf("expected ErrTransaction, got %v", err)
	}
}

func TestTransactionRollbackDiscardsWrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Execute(ctx, "CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT)", nil); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if err := db.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := db.Execute(ctx, "INSERT INTO note (body) VALUES (:body)",
		map[string]any{"body": "discarded"}); err != nil {
		t.Fatalf("insert in tx: %v", err)
	}
	if err := db.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	value, found, err := db.QueryScalar(ctx, "SELECT COUNT(*) FROM note")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if !found || value.(int64) != 0 {
		t.Fatalf("expected empty table after rollback, got %v", value)
	}
}

func TestTransactionCommitKeepsWrites(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Execute(ctx, "CREATE TABLE note (id INTEGER PRIMARY KEY, body TEXT)", nil); err != nil {
		t.Fatalf("create table: %v", err)
	}

	if err := db.Begin(ctx); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := db.Execute(ctx, "INSERT INTO note (body) VALUES (:body)",
		map[string]any{"body": "kept"}); err != nil {
		t.Fatalf("insert in tx: %v", err)
	}
	if err := db.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if db.InTransaction() {
		t.Fatal("expected no open transaction after commit")
	}

	value, found, err := db.QueryScalar(ctx, "SELECT body FROM note")
	if err != nil {
		t.Fatalf("QueryScalar: %v", err)
	}
	if !found || value.(string) != "kept" {
		t.Fatalf("expected committed row, got %v (found=%v)", value, found)
	}
}
