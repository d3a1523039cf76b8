package medassist

import "errors"

// Sentinel errors for terminal gateway failures. All three end the
// current Send; none is retried once classified.
var (
	// ErrRateLimited indicates the provider signaled quota or rate
	// exhaustion. Wait before trying again.
	ErrRateLimited = errors.New("rate limited")

	// ErrAuthentication indicates the provider rejected the API key.
	ErrAuthentication = errors.New("authentication failed")

	// ErrRetriesExhausted indicates repeated transient failures exceeded
	// the retry ceiling. The wrapping error carries the last failure.
	ErrRetriesExhausted = errors.New("retries exhausted")

	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")
)
