package memos

import (
	"context"

	"memos-graph-sync/internal/model"
)

// Client is the version-independent contract over a Memos server.
// One implementation exists per server API generation; callers depend only on this interface.
//
// A Client holds the pagination cursor of a single sync at a time. Concurrent
// syncs against one Client are not supported.
type Client interface {
	// ListMemos fetches the next page of memos. isFirstPage resets the cursor.
	// A non-first call after the feed is exhausted returns an empty slice without a request.
	ListMemos(ctx context.Context, pageSize int, isFirstPage, includeArchived bool) ([]model.Memo, error)

	// UpdateMemo patches the memo with the given numeric id.
	UpdateMemo(ctx context.Context, id int64, patch model.MemoPatch) (model.Memo, error)

	// CreateMemo posts a new memo.
	CreateMemo(ctx context.Context, content string, visibility model.Visibility) (model.Memo, error)

	// ResetCursor discards any pagination state.
	ResetCursor()
}
