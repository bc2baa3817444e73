package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProductNotFound is returned when an operation targets a product
	// identifier that does not exist in the database.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound is returned when an operation targets an order
	// identifier that does not exist in the database.
	ErrOrderNotFound = errors.New("order not found")

	// ErrUserNotFound is returned when an operation targets a user
	// identifier (or username) that does not exist in the database.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameAlreadyExists is returned when an attempt to create or
	// update a user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrIDAlreadyExists is returned when an insert with a caller-supplied
	// identifier collides with an existing row.
	ErrIDAlreadyExists = errors.New("identifier already exists")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
