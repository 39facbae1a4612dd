package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB owns the single connection to the embedded SQLite database. All SQL
// text and parameter binding pass through it, and it tracks at most one
// open transaction at a time. It is not safe for concurrent use from
// multiple goroutines; callers serialize access externally.
type DB struct {
	path         string
	conn         *sql.DB
	tx           *sql.Tx
	lastInsertID int64
}

// Open opens or creates the database file at path and configures it for
// use. It enables WAL mode and foreign keys and pins the pool to a single
// connection, since the handle is the sole owner.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("%w: create database directory: %w", ErrConnection, err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrConnection, path, err)
	}

	// Enable WAL mode for better read performance.
	if _, err := conn.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: enable WAL mode: %w", ErrConnection, err)
	}

	// Enable foreign key enforcement.
	if _, err := conn.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: enable foreign keys: %w", ErrConnection, err)
	}

	// One handle, one connection. A larger pool would also break the
	// handle-level transaction tracking below.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(context.Background()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: ping %s: %w", ErrConnection, path, err)
	}

	return &DB{path: path, conn: conn}, nil
}

// Close releases the underlying connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("%w: close: %w", ErrConnection, err)
	}
	return nil
}

// Path returns the filesystem path the database was opened with.
func (db *DB) Path() string {
	return db.path
}

// Execute prepares query, binds each entry of params as a named parameter
// and executes the statement. The generated row id, if any, is captured
// for LastInsertedID. While a transaction is open, the statement runs
// inside it.
func (db *DB) Execute(ctx context.Context, query string, params map[string]any) error {
	stmt, err := db.prepare(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStatement, err)
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx, namedArgs(params)...)
	if err != nil {
		if isBindFailure(err) {
			return fmt.Errorf("%w: %w", ErrBind, err)
		}
		return fmt.Errorf("%w: %w", ErrExecution, err)
	}

	if id, err := result.LastInsertId(); err == nil && id != 0 {
		db.lastInsertID = id
	}
	return nil
}

// Query prepares and executes a row-returning query with named
// parameters. The caller owns the returned rows and must close them.
func (db *DB) Query(ctx context.Context, query string, params map[string]any) (*sql.Rows, error) {
	stmt, err := db.prepare(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatement, err)
	}
	defer stmt.Close()

	rows, err := stmt.QueryContext(ctx, namedArgs(params)...)
	if err != nil {
		if isBindFailure(err) {
			return nil, fmt.Errorf("%w: %w", ErrBind, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrExecution, err)
	}
	return rows, nil
}

// QueryScalar runs query and returns the first column of the first row.
// The outcome is three-way: (value, true, nil) for a row — even when the
// value is zero or empty — (nil, false, nil) for an empty result set, and
// a non-nil error only when the query itself fails.
func (db *DB) QueryScalar(ctx context.Context, query string) (any, bool, error) {
	rows, err := db.Query(ctx, query, nil)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, fmt.Errorf("%w: %w", ErrQuery, err)
		}
		return nil, false, nil
	}

	var value any
	if err := rows.Scan(&value); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return value, true, nil
}

// Begin opens a transaction on the handle. Transactions are single-level:
// beginning while one is already open is an error, not a no-op.
func (db *DB) Begin(ctx context.Context) error {
	if db.tx != nil {
		return fmt.Errorf("%w: begin: a transaction is already open", ErrTransaction)
	}
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransaction, err)
	}
	db.tx = tx
	return nil
}

// Commit commits the open transaction.
func (db *DB) Commit() error {
	if db.tx == nil {
		return fmt.Errorf("%w: commit: no transaction is open", ErrTransaction)
	}
	err := db.tx.Commit()
	db.tx = nil
	if err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransaction, err)
	}
	return nil
}

// Rollback aborts the open transaction.
func (db *DB) Rollback() error {
	if db.tx == nil {
		return fmt.Errorf("%w: rollback: no transaction is open", ErrTransaction)
	}
	err := db.tx.Rollback()
	db.tx = nil
	if err != nil {
		return fmt.Errorf("%w: rollback: %w", ErrTransaction, err)
	}
	return nil
}

// InTransaction reports whether a transaction is currently open.
func (db *DB) InTransaction() bool {
	return db.tx != nil
}

// LastInsertedID returns the row id generated by the most recent insert
// on this handle.
func (db *DB) LastInsertedID() int64 {
	return db.lastInsertID
}

// prepare targets the open transaction when there is one, the bare
// connection otherwise. Preparing through the transaction is what scopes
// DDL in an upgrade step to that step's transaction.
func (db *DB) prepare(ctx context.Context, query string) (*sql.Stmt, error) {
	if db.tx != nil {
		return db.tx.PrepareContext(ctx, query)
	}
	return db.conn.PrepareContext(ctx, query)
}

func namedArgs(params map[string]any) []any {
	args := make([]any, 0, len(params))
	for name, value := range params {
		args = append(args, sql.Named(name, value))
	}
	return args
}
