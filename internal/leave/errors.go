package leave

import "errors"

// Validation errors returned by Service operations. All are
// caller-recoverable; the presentation layer decides how to show them.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidRange        = errors.New("invalid date range")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrAlreadyProcessed    = errors.New("leave already processed")
)
