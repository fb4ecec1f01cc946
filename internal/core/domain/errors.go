package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	// Returned before any I/O takes place.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedKind indicates an unknown source kind.
	ErrUnsupportedKind = errors.New("unsupported source kind")

	// Scan and Replace Errors.

	// ErrRecordNotFound indicates the referenced record no longer exists.
	ErrRecordNotFound = errors.New("record not found")

	// ErrTermNotFound indicates a replace produced no change.
	// The match was stale: the record changed since the last scan.
	ErrTermNotFound = errors.New("term not found")

	// ErrSourceUnavailable indicates a source failed to enumerate.
	// The scan continues with the remaining sources.
	ErrSourceUnavailable = errors.New("source unavailable")

	// Storage Errors.

	// ErrStorage indicates the backing store failed to read or persist state.
	ErrStorage = errors.New("storage error")

	// ErrWrite indicates the backing store rejected a record update.
	ErrWrite = errors.New("write error")
)
