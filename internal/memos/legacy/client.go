package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/model"
)

// ListMemos fetches one page via GET /api/v1/memo?limit&offset.
func (c *Client) ListMemos(ctx context.Context, pageSize int, isFirstPage, includeArchived bool) ([]model.Memo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	offset := 0
	if isFirstPage {
		c.cursor.Reset()
	} else {
		token, ok := c.cursor.Next()
		if !ok {
			return []model.Memo{}, nil
		}
		offset, _ = strconv.Atoi(token)
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(pageSize))
	if !includeArchived {
		query.Set("rowStatus", string(model.RowStatusNormal))
	}

	// Older servers ignore rowStatus, so a page may filter down to nothing
	// while more offsets remain. Skip ahead the same way the v1 client does.
	for fetched := 1; ; fetched++ {
		query.Set("offset", strconv.Itoa(offset))

		var raw json.RawMessage
		if err := c.transport.Do(ctx, http.MethodGet, memoPath, query, nil, &raw); err != nil {
			c.cursor.Reset()
			c.l.Errorf(ctx, "memos legacy: list memos failed: %v", err)
			return nil, &memos.FetchError{Op: "list", Err: err}
		}

		page := c.decodePage(ctx, raw)
		if pageSize > 0 && len(page) >= pageSize {
			c.cursor.Advance(strconv.Itoa(offset + len(page)))
		} else {
			c.cursor.Advance("")
		}

		result := make([]model.Memo, 0, len(page))
		for _, m := range page {
			if !includeArchived && m.RowStatus != string(model.RowStatusNormal) {
				continue
			}
			result = append(result, c.toModel(m))
		}

		c.l.Debugf(ctx, "memos legacy: fetched %d memos at offset %d", len(result), offset)

		token, more := c.cursor.Next()
		if len(result) > 0 || !more {
			return result, nil
		}
		if fetched >= memos.MaxSkippedPages {
			c.l.Warnf(ctx, "memos legacy: %d consecutive pages had no visible memos, stopping", fetched)
			return result, nil
		}
		offset, _ = strconv.Atoi(token)
	}
}

// UpdateMemo patches a memo via PATCH /api/v1/memo/{id}.
func (c *Client) UpdateMemo(ctx context.Context, id int64, patch model.MemoPatch) (model.Memo, error) {
	if _, ok := c.ids.ToNativeName(id); !ok {
		return model.Memo{}, memos.UnknownID(id)
	}

	req := updateMemoRequest{Content: patch.Content}
	if patch.Visibility != "" {
		req.Visibility = strings.ToUpper(string(patch.Visibility))
	}
	if patch.Archive {
		req.RowStatus = string(model.RowStatusArchived)
	}

	var resp json.RawMessage
	if err := c.transport.Do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", memoPath, id), nil, req, &resp); err != nil {
		c.l.Errorf(ctx, "memos legacy: update memo %d failed: %v", id, err)
		return model.Memo{}, &memos.FetchError{Op: "update", Err: err}
	}
	return c.decodeOne(resp)
}

// CreateMemo creates a memo via POST /api/v1/memo.
func (c *Client) CreateMemo(ctx context.Context, content string, visibility model.Visibility) (model.Memo, error) {
	req := createMemoRequest{
		Content:    content,
		Visibility: strings.ToUpper(string(visibility)),
	}

	var resp json.RawMessage
	if err := c.transport.Do(ctx, http.MethodPost, memoPath, nil, req, &resp); err != nil {
		c.l.Errorf(ctx, "memos legacy: create memo failed: %v", err)
		return model.Memo{}, &memos.FetchError{Op: "create", Err: err}
	}
	return c.decodeOne(resp)
}

// ResetCursor discards the stored offset.
func (c *Client) ResetCursor() {
	c.mu.Lock()
	c.cursor.Reset()
	c.mu.Unlock()
}
