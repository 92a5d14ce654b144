// Package common defines shared sentinel errors used across the app.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors: required input missing before an add/save.
	// The operation is rejected and the form stays open.
	ErrValidation = errors.New("validation error")

	// Device errors.
	ErrDeviceUnavailable = errors.New("recording device unavailable")
	ErrPlayback          = errors.New("playback error")

	// Persistence errors: a remote read/write failed. Local state is left
	// at its last-known value; there is no retry or offline queue.
	ErrPersistence = errors.New("persistence error")

	// ErrNotFound is returned by lookups for a missing document or record.
	// Update/remove on a missing id is intentionally silent instead.
	ErrNotFound = errors.New("not found")

	// ErrCancelled is returned when the user dismisses a picker dialog.
	ErrCancelled = errors.New("cancelled")
)
