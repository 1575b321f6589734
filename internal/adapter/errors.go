package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrRejected is returned when the remote side answered 2xx with
	// success == false.
	ErrRejected = errors.New("request rejected")

	// ErrDecode is returned when a response body cannot be decoded.
	ErrDecode = errors.New("malformed response")
)

// RemoteError is an error reported by the remote side. Message is the
// human-readable reason taken from the response body when present.
type RemoteError struct {
	Status  int
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Message returns the remote message carried by err, or an empty string when
// err was not produced by the remote side or the remote sent no message.
func Message(err error) string {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Message
	}
	return ""
}
