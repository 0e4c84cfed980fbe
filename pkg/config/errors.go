package config

import "errors"

// ErrParseFailed indicates that environment variables could not be parsed
// into the target configuration struct.
var ErrParseFailed = errors.New("config.errors.parse_failed")
