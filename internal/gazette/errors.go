package gazette

import "errors"

// Client errors.
var (
	// ErrMissingAPIKey is returned when a harvest is attempted without
	// an API key.
	ErrMissingAPIKey = errors.New("gazette: API key is required")

	// ErrUnexpectedStatus is returned when the API answers with a
	// non-200 status code.
	ErrUnexpectedStatus = errors.New("gazette: unexpected response status")

	// ErrMalformedResponse is returned when a response body does not
	// decode into the expected result structure.
	ErrMalformedResponse = errors.New("gazette: malformed response")
)
