package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrEmptyAPIKey      = errors.New("API key cannot be empty")
	ErrNotATerminal     = errors.New("standard input is not a terminal, pass the key as an argument")
)

// Command input errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidFieldFlag    = errors.New("field flags must be key=value")
	ErrNothingToUpdate     = errors.New("no fields to update")
	ErrEngagementRequired  = errors.New("--eid flag is required")
	ErrHostRequired        = errors.New("--hid flag is required")
	ErrObjectRequired      = errors.New("--otype and --oid flags are required")
)

// Import errors.
var (
	ErrNoHostsInReport = errors.New("nmap report contains no hosts that are up")
)

// Command result errors.
var (
	ErrMutationFailed = errors.New("request was not accepted")
)
