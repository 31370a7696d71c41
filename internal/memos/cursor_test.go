package memos_test

import (
	"testing"

	"memos-graph-sync/internal/memos"
)

func TestCursor(t *testing.T) {
	var c memos.Cursor
	if c.State() != memos.CursorFresh {
		t.Fatalf("expected fresh cursor, got %s", c.State())
	}
	if _, ok := c.Next(); ok {
		t.Errorf("fresh cursor must not yield a token")
	}

	c.Advance("t1")
	if tok, ok := c.Next(); !ok || tok != "t1" {
		t.Errorf("expected t1, got %q %v", tok, ok)
	}
	if c.State() != memos.CursorInProgress {
		t.Errorf("expected in_progress, got %s", c.State())
	}

	c.Advance("")
	if _, ok := c.Next(); ok {
		t.Errorf("exhausted cursor must not yield a token")
	}
	if c.State() != memos.CursorExhausted {
		t.Errorf("expected exhausted, got %s", c.State())
	}

	c.Reset()
	if c.State() != memos.CursorFresh {
		t.Errorf("expected fresh after reset, got %s", c.State())
	}
}

func TestCursorRepeatedToken(t *testing.T) {
	var c memos.Cursor
	c.Advance("t1")
	c.Advance("t1")
	if _, ok := c.Next(); ok {
		t.Errorf("a repeated token must exhaust the cursor")
	}
	if c.State() != memos.CursorExhausted {
		t.Errorf("expected exhausted, got %s", c.State())
	}

	c.Reset()
	c.Advance("t1")
	c.Advance("t2")
	if tok, ok := c.Next(); !ok || tok != "t2" {
		t.Errorf("expected t2, got %q %v", tok, ok)
	}
}
