package frame

import "github.com/pkg/errors"

var (
	// ErrColumnLengthMismatch is returned when a table is built from columns
	// (or row labels) of differing lengths.
	ErrColumnLengthMismatch = errors.New("column lengths differ")
	// ErrColumnMismatch is returned when column names are missing,
	// duplicated, or differ between tables that must share them.
	ErrColumnMismatch = errors.New("column names differ")
	// ErrLengthMismatch is returned when a grouping key does not have one
	// element per row.
	ErrLengthMismatch = errors.New("key length does not match row count")
)
