package memos

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuth means the server rejected the credentials (401/403).
	ErrAuth = errors.New("authentication failed - please check your memos token")

	// ErrConnection covers every other transport or HTTP failure.
	ErrConnection = errors.New("cannot connect to memos server")

	// ErrUnknownID means a numeric id was never produced by this process's mapper.
	ErrUnknownID = errors.New("memo id not found in mapping")

	// ErrMalformedResponse means the response lacked the expected memo array.
	ErrMalformedResponse = errors.New("unexpected response format")

	// ErrUnsupportedVersion is returned by the client factory.
	ErrUnsupportedVersion = errors.New("unsupported memos api version")
)

// FetchError wraps a failed client operation.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("memos %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ClassifyStatus maps a non-2xx HTTP status to ErrAuth or ErrConnection.
func ClassifyStatus(status int, msg string) error {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w (status %d): %s", ErrAuth, status, msg)
	}
	if status >= 300 && status < 400 {
		return fmt.Errorf("%w: unexpected redirect (status %d)", ErrConnection, status)
	}
	return fmt.Errorf("%w (status %d): %s", ErrConnection, status, msg)
}

// ConnectionFailure wraps a transport or decoding error as ErrConnection.
func ConnectionFailure(err error) error {
	return fmt.Errorf("%w: %v", ErrConnection, err)
}

// UnknownID returns ErrUnknownID annotated with the id.
func UnknownID(id int64) error {
	return fmt.Errorf("%w: %d", ErrUnknownID, id)
}
