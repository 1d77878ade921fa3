package credentials

import "errors"

// Configuration errors, raised before any request leaves the process.
// Use errors.Is() to check.
var (
	ErrMissingAppID  = errors.New("application id is not configured")
	ErrMissingAPIKey = errors.New("api key is not configured")

	// ErrParsingEnv wraps failures from parsing the process environment.
	ErrParsingEnv = errors.New("failed to parse credentials from environment")
)
