package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrExpectationFailed   = errors.New("expectation failed")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// statusErrors lists every sentinel mapHTTPError can produce. IsHTTPStatus
// needs the full set to separate "the server answered with a non-2xx" from
// transport failures, which the read paths treat very differently.
var statusErrors = []error{
	ErrBadRequest,
	ErrUnauthorized,
	ErrForbidden,
	ErrNotFound,
	ErrExpectationFailed,
	ErrInternalServerError,
	ErrBadGateway,
	ErrUnexpectedStatus,
}

// IsHTTPStatus reports whether err originates from a non-2xx server
// response (as opposed to a transport/network failure). Read operations
// degrade to empty defaults on status errors and propagate everything else.
func IsHTTPStatus(err error) bool {
	for _, sentinel := range statusErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
