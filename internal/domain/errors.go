package domain

import "errors"

var (
	ErrNetwork           = errors.New("network error")
	ErrMalformedResponse = errors.New("malformed response")
	ErrEmptyResult       = errors.New("empty result")
	ErrInvalidRate       = errors.New("invalid rate")
	ErrInvalidInput      = errors.New("invalid input")
)

// IsTransient reports whether err is an operational condition worth retrying
// rather than a problem with the request.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrEmptyResult)
}
