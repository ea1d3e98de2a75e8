package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert or update collides
	// with the unique username constraint.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when an insert or update collides
	// with the unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrFileNotFound is returned when no registry record matches the id.
	ErrFileNotFound = errors.New("file record was not found")

	// ErrReferenceNotFound is returned when a write points at a row that no
	// longer exists, e.g. an upload attributed to a deleted account.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrTransient marks driver failures that may succeed on a later attempt
	// (lost connection, serialization failure, locked database).
	ErrTransient = errors.New("transient database error")
)

// File storage errors.
var (
	// ErrFileTooLarge is returned by [FileStorage.Save] when the stream
	// exceeds the allowed size.
	ErrFileTooLarge = errors.New("file exceeds size limit")

	// ErrInvalidFilename is returned for names that are not a plain base
	// name inside the storage directory.
	ErrInvalidFilename = errors.New("invalid file name")

	// ErrNameSpaceExhausted is returned when no free file name could be
	// reserved.
	ErrNameSpaceExhausted = errors.New("could not reserve a unique file name")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrUnsupportedDSN is returned when the DSN scheme names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
