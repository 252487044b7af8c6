package domain

import "errors"

// Sentinel errors classifying every failure the engines can produce.
// Callers wrap them with context via fmt.Errorf("...: %w", Err...) and the
// transport adapter maps them to response codes with errors.Is.
var (
	// ErrValidation indicates malformed or out-of-range input
	// (non-positive grams, more than 3 decimals, empty required text, negative price).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates a referenced identifier does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStateConflict indicates the operation would violate an invariant of the
	// current state (selling an already-sold accessory, insufficient balance,
	// deleting a transaction that would drive the balance negative, or an
	// illegal check status transition).
	ErrStateConflict = errors.New("state conflict")

	// ErrMismatch indicates a transaction's metal type disagrees with the
	// caller's claim.
	ErrMismatch = errors.New("metal type mismatch")
)
