package memos

// CursorState is the pagination state of a Client.
type CursorState int

const (
	CursorFresh CursorState = iota
	CursorInProgress
	CursorExhausted
)

func (s CursorState) String() string {
	switch s {
	case CursorFresh:
		return "fresh"
	case CursorInProgress:
		return "in_progress"
	case CursorExhausted:
		return "exhausted"
	}
	return "unknown"
}

// Cursor tracks the continuation token of a paged feed. It is never persisted.
type Cursor struct {
	state CursorState
	token string
}

// Reset returns the cursor to Fresh.
func (c *Cursor) Reset() {
	c.state = CursorFresh
	c.token = ""
}

// Next returns the token to request the following page with.
// ok is false when there is nothing left to fetch.
func (c *Cursor) Next() (token string, ok bool) {
	if c.state != CursorInProgress {
		return "", false
	}
	return c.token, true
}

// MaxSkippedPages bounds how many consecutive pages a client may fetch and
// discard (everything filtered out) within a single ListMemos call.
const MaxSkippedPages = 10

// Advance records the token returned with a page. An empty token exhausts the
// feed, and so does a repeat of the token that was just consumed.
func (c *Cursor) Advance(token string) {
	if token == "" || (c.state == CursorInProgress && token == c.token) {
		c.state = CursorExhausted
		c.token = ""
		return
	}
	c.state = CursorInProgress
	c.token = token
}

// State returns the current state.
func (c *Cursor) State() CursorState {
	return c.state
}
