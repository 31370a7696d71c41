package v1

import (
	"sync"

	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/memos/idmap"
	pkgLog "memos-graph-sync/pkg/log"
)

const memosPath = "/api/v1/memos"

// Client talks to Memos servers exposing the resource-name based v1 API
// with token pagination.
type Client struct {
	transport *memos.Transport
	ids       *idmap.Mapper
	l         pkgLog.Logger

	mu     sync.Mutex
	cursor memos.Cursor
}

// New creates a v1 client. ids is shared with every other client of the same sync session.
func New(transport *memos.Transport, ids *idmap.Mapper, l pkgLog.Logger) *Client {
	return &Client{
		transport: transport,
		ids:       ids,
		l:         l,
	}
}

var _ memos.Client = (*Client)(nil)
