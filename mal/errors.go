package mal

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps connection, DNS and TLS failures.
	ErrTransport = errors.New("mal: transport failure")
	// ErrRequestFailed is matched by every *RequestError.
	ErrRequestFailed = errors.New("mal: request failed")
	// ErrDecode means the response body did not have the expected shape.
	ErrDecode = errors.New("mal: unexpected response")
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("mal: invalid value")
	// ErrNotAuthenticated is returned by list mutations while no token is held.
	ErrNotAuthenticated = errors.New("mal: not logged in")
	// ErrMalformedURL means a URL had no numeric id segment.
	ErrMalformedURL = errors.New("mal: url contains no anime id")
	// ErrNoClientID means a request or login was attempted without a client id.
	ErrNoClientID = errors.New("mal: client id is not configured")

	// ErrListen means the login callback listener could not bind.
	ErrListen = errors.New("mal: cannot start callback listener")
	// ErrMalformedCallback means a redirect to the listener carried an unparsable query.
	ErrMalformedCallback = errors.New("mal: malformed callback url")
	// ErrAuthorizationTimeout means no redirect arrived before the deadline.
	ErrAuthorizationTimeout = errors.New("mal: authorization timed out")
	// ErrTokenExchange wraps network failures while redeeming the code.
	ErrTokenExchange = errors.New("mal: token exchange failed")
	// ErrNoAccessToken means the token endpoint answered without an access_token.
	ErrNoAccessToken = errors.New("mal: no access token in response")
)

// RequestError is a non-2xx API response.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("mal: %s %s failed with status %d", e.Method, e.Path, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *RequestError) Unwrap() error {
	return ErrRequestFailed
}

// ValidationError is a bounded value outside its range.
type ValidationError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mal: %s has to be %d-%d, got %d", e.Field, e.Min, e.Max, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func checkRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &ValidationError{Field: field, Value: value, Min: min, Max: max}
	}
	return nil
}
