package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert violates the
	// unique constraint on accounts.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrAccountNotFound is returned by Update and Delete when the targeted
	// account row no longer exists.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrStore wraps every other failure of the underlying database.
	ErrStore = errors.New("store error")
)

// Low-level database operation errors. They are always wrapped together
// with [ErrStore].
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set
	// fails.
	ErrScanningRows = errors.New("failed to iterate rows")
)
