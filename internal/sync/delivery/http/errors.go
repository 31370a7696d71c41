package http

import (
	"errors"
	"net/http"

	"memos-graph-sync/internal/memos"
	memoSync "memos-graph-sync/internal/sync"
)

var (
	errInvalidID      = errors.New("id must be a positive integer")
	errInvalidPage    = errors.New("page name is required")
	errInvalidSecret  = errors.New("invalid webhook secret")
	errRateLimited    = errors.New("rate limit exceeded")
	errInvalidPayload = errors.New("invalid webhook payload")
)

// mapError translates use-case errors into HTTP status codes. Zero means internal error.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, memoSync.ErrRunInProgress):
		return http.StatusConflict
	case errors.Is(err, memoSync.ErrInvalidMemoID),
		errors.Is(err, memoSync.ErrEmptyPatch),
		errors.Is(err, memoSync.ErrEmptyContent):
		return http.StatusBadRequest
	case errors.Is(err, memos.ErrUnknownID):
		return http.StatusNotFound
	case errors.Is(err, memos.ErrAuth),
		errors.Is(err, memos.ErrConnection),
		errors.Is(err, memos.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return 0
	}
}
