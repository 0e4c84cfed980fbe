package flags

import "errors"

// Domain errors for flag registry and fetch operations.
var (
	// ErrEmptyFlagID indicates a registry definition without an id.
	ErrEmptyFlagID = errors.New("flags.errors.empty_flag_id")

	// ErrDuplicateFlag indicates two registry definitions sharing an id.
	ErrDuplicateFlag = errors.New("flags.errors.duplicate_flag")

	// ErrFetchFailed indicates the remote flag source could not be reached
	// or its response could not be decoded.
	ErrFetchFailed = errors.New("flags.errors.fetch_failed")

	// ErrUnexpectedStatus indicates a non-200 response from the remote flag
	// source.
	ErrUnexpectedStatus = errors.New("flags.errors.unexpected_status")
)
