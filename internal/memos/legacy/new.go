package legacy

import (
	"sync"

	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/memos/idmap"
	pkgLog "memos-graph-sync/pkg/log"
)

const memoPath = "/api/v1/memo"

// Client talks to pre-v1 Memos servers. Their feed is offset based; the offset of
// the next page is kept as the cursor token so callers see the same state machine
// as with token-paged servers.
type Client struct {
	transport *memos.Transport
	ids       *idmap.Mapper
	l         pkgLog.Logger

	mu     sync.Mutex
	cursor memos.Cursor
}

// New creates a legacy client.
func New(transport *memos.Transport, ids *idmap.Mapper, l pkgLog.Logger) *Client {
	return &Client{
		transport: transport,
		ids:       ids,
		l:         l,
	}
}

var _ memos.Client = (*Client)(nil)
