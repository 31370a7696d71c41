package graph

import (
	"context"

	"memos-graph-sync/internal/model"
)

// Store is the local note graph as seen by the sync engine.
type Store interface {
	// FindByMemoID returns the first block whose memo-id or memoid property equals memoID, or nil.
	FindByMemoID(ctx context.Context, memoID int64) (*Block, error)

	// InsertTree appends root, with its nested children, to the end of pageName.
	InsertTree(ctx context.Context, pageName string, root model.BlockPayload) (Block, error)

	// ListPage returns the blocks of pageName in insertion order.
	ListPage(ctx context.Context, pageName string) ([]Block, error)
}
