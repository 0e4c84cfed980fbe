package permission

import "errors"

// Domain errors for permission checks.
var (
	// ErrPermissionDenied is returned when the subject lacks a required permission.
	ErrPermissionDenied = errors.New("permission.errors.denied")

	// ErrNoSubject is returned when no subject is available for the check.
	ErrNoSubject = errors.New("permission.errors.no_subject")
)
