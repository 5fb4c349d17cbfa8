// Package domain defines domain-level errors for the snapshot feature.
package domain

import "errors"

// Domain errors for snapshot operations. These represent rejected operations
// the caller maps to user-facing responses; collaborator I/O failures
// propagate separately, wrapped.
var (
	// ErrInvalidCode indicates the market data source does not know the
	// submitted stock code. Detected before any mutation.
	ErrInvalidCode = errors.New("unknown stock code")

	// ErrDuplicateSnapshot indicates a snapshot already exists for the same
	// user, stock name and registration date.
	ErrDuplicateSnapshot = errors.New("snapshot already exists for this date")

	// ErrSnapshotNotFound indicates the snapshot targeted by an update or
	// delete does not exist (or belongs to another user).
	ErrSnapshotNotFound = errors.New("snapshot not found")
)
