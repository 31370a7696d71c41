package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/memos/idmap"
	"memos-graph-sync/internal/model"
)

// ListMemos fetches one page of memos via GET /api/v1/memos.
func (c *Client) ListMemos(ctx context.Context, pageSize int, isFirstPage, includeArchived bool) ([]model.Memo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(pageSize))

	if isFirstPage {
		c.cursor.Reset()
	} else {
		token, ok := c.cursor.Next()
		if !ok {
			return []model.Memo{}, nil
		}
		query.Set("pageToken", token)
	}

	// Archived memos are filtered here, so a page can shrink to nothing while
	// more pages remain. Keep going until something survives or the feed ends,
	// for at most MaxSkippedPages requests.
	for fetched := 1; ; fetched++ {
		var resp listMemosResponse
		if err := c.transport.Do(ctx, http.MethodGet, memosPath, query, nil, &resp); err != nil {
			c.cursor.Reset()
			c.l.Errorf(ctx, "memos v1: list memos failed: %v", err)
			return nil, &memos.FetchError{Op: "list", Err: err}
		}

		c.cursor.Advance(resp.NextPageToken)
		raw, ok := c.decodePage(ctx, resp.Memos)
		if !ok {
			return []model.Memo{}, nil
		}

		result := make([]model.Memo, 0, len(raw))
		for _, m := range raw {
			if !includeArchived && status(m) != string(model.RowStatusNormal) {
				continue
			}
			result = append(result, c.toModel(m))
		}

		c.l.Debugf(ctx, "memos v1: fetched %d memos (cursor %s)", len(result), c.cursor.State())

		token, more := c.cursor.Next()
		if len(result) > 0 || !more {
			return result, nil
		}
		if fetched >= memos.MaxSkippedPages {
			c.l.Warnf(ctx, "memos v1: %d consecutive pages had no visible memos, stopping", fetched)
			return result, nil
		}
		query.Set("pageToken", token)
	}
}

// UpdateMemo patches a memo via PATCH /api/v1/memos/{uid}.
func (c *Client) UpdateMemo(ctx context.Context, id int64, patch model.MemoPatch) (model.Memo, error) {
	name, ok := c.ids.ToNativeName(id)
	if !ok {
		return model.Memo{}, memos.UnknownID(id)
	}

	req := updateMemoRequest{Content: patch.Content}
	if patch.Visibility != "" {
		req.Visibility = strings.ToUpper(string(patch.Visibility))
	}
	if patch.Archive {
		req.RowStatus = string(model.RowStatusArchived)
	}

	path := fmt.Sprintf("%s/%s", memosPath, idmap.LastSegment(name))

	var resp memoResource
	if err := c.transport.Do(ctx, http.MethodPatch, path, nil, req, &resp); err != nil {
		c.l.Errorf(ctx, "memos v1: update memo %d failed: %v", id, err)
		return model.Memo{}, &memos.FetchError{Op: "update", Err: err}
	}
	return c.toModel(resp), nil
}

// CreateMemo creates a memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, content string, visibility model.Visibility) (model.Memo, error) {
	req := createMemoRequest{
		Content:    content,
		Visibility: strings.ToUpper(string(visibility)),
	}

	var resp memoResource
	if err := c.transport.Do(ctx, http.MethodPost, memosPath, nil, req, &resp); err != nil {
		c.l.Errorf(ctx, "memos v1: create memo failed: %v", err)
		return model.Memo{}, &memos.FetchError{Op: "create", Err: err}
	}
	return c.toModel(resp), nil
}

// ResetCursor discards the continuation token.
func (c *Client) ResetCursor() {
	c.mu.Lock()
	c.cursor.Reset()
	c.mu.Unlock()
}

// decodePage reads the memos array. ok is false when the field is not an
// array; the caller degrades to an empty page.
func (c *Client) decodePage(ctx context.Context, raw json.RawMessage) (page []memoResource, ok bool) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, true
	}

	if err := json.Unmarshal(raw, &page); err != nil {
		c.l.Warnf(ctx, "memos v1: %v, memos is not an array: %v", memos.ErrMalformedResponse, err)
		return nil, false
	}
	return page, true
}
