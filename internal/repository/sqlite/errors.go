package sqlite

import (
	"errors"
	"strings"
)

// Failure kinds reported by the connection handle. Callers outside this
// package generally cannot recover differently per kind; the split exists
// for logging and diagnostics. Branch with errors.Is, or use
// IsDatabaseError for the uniform "database operation failed" signal.
var (
	ErrConnection     = errors.New("database connection failed")
	ErrStatement      = errors.New("statement preparation failed")
	ErrBind           = errors.New("parameter binding failed")
	ErrExecution      = errors.New("statement execution failed")
	ErrQuery          = errors.New("query failed")
	ErrTransaction    = errors.New("transaction control failed")
	ErrInvalidVersion = errors.New("schema version must be 1 or greater")
)

// IsDatabaseError reports whether err originated in the database layer,
// regardless of kind.
func IsDatabaseError(err error) bool {
	for _, kind := range []error{
		ErrConnection, ErrStatement, ErrBind, ErrExecution,
		ErrQuery, ErrTransaction, ErrInvalidVersion,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}

// isBindFailure distinguishes parameter binding problems (unknown
// placeholder, argument count mismatch) from general execution failures.
// Neither database/sql nor the driver expose a dedicated type for these,
// so classification is by message.
func isBindFailure(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "argument") ||
		strings.Contains(msg, "parameter") ||
		strings.Contains(msg, "bind")
}

// isUniqueConstraintError checks if the error is a SQLite unique
// constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
