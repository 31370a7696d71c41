package sync

import "errors"

var (
	ErrRunInProgress = errors.New("a sync run is already in progress")
	ErrInvalidMemoID = errors.New("memo id must be positive")
	ErrEmptyPatch    = errors.New("nothing to update")
	ErrEmptyContent  = errors.New("memo content is empty")
)
