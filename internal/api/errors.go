package api

import "errors"

var (
	// ErrUnauthorized indicates a missing, expired, or rejected bearer token.
	ErrUnauthorized = errors.New("not authenticated")

	// ErrUnavailable indicates the care planner API is unreachable.
	ErrUnavailable = errors.New("care planner API unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("api request timed out")

	// ErrInvalidResponse indicates the response body could not be decoded
	// into the expected shape.
	ErrInvalidResponse = errors.New("invalid api response format")

	// ErrAPI indicates a non-2xx response other than 401; the wrapping
	// error carries the status code and server detail.
	ErrAPI = errors.New("api request failed")
)

func isTimeout(err error) bool         { return errors.Is(err, ErrTimeout) }
func isUnauthorized(err error) bool    { return errors.Is(err, ErrUnauthorized) }
func isUnavailable(err error) bool     { return errors.Is(err, ErrUnavailable) }
func isInvalidResponse(err error) bool { return errors.Is(err, ErrInvalidResponse) }
