package http

import (
	"strings"

	"memos-graph-sync/internal/graph"
	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
	"memos-graph-sync/pkg/response"
)

// --- Request DTOs ---

type syncReq struct {
	Full bool `json:"full"`
}

func (r syncReq) toInput() memoSync.RunInput {
	return memoSync.RunInput{Full: r.Full, Trigger: "http"}
}

// ---

type createMemoReq struct {
	Content    string `json:"content" binding:"required"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=PUBLIC PROTECTED PRIVATE public protected private"`
}

func (r createMemoReq) toInput() memoSync.CreateInput {
	return memoSync.CreateInput{
		Content:    r.Content,
		Visibility: model.Visibility(strings.ToUpper(r.Visibility)),
	}
}

// ---

type updateMemoReq struct {
	ID         int64  `json:"-"` // populated from URI param
	Content    string `json:"content"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=PUBLIC PROTECTED PRIVATE public protected private"`
	Archive    bool   `json:"archive"`
}

func (r updateMemoReq) toInput() memoSync.PushInput {
	return memoSync.PushInput{
		MemoID:     r.ID,
		Content:    r.Content,
		Visibility: model.Visibility(strings.ToUpper(r.Visibility)),
		Archive:    r.Archive,
	}
}

// ---

type pushBlockReq struct {
	Content    string         `json:"content"`
	Properties map[string]any `json:"properties" binding:"required"`
	Visibility string         `json:"visibility" binding:"omitempty,oneof=PUBLIC PROTECTED PRIVATE public protected private"`
}

func (r pushBlockReq) toInput() memoSync.PushInput {
	return memoSync.PushInput{
		Content:    r.Content,
		Properties: r.Properties,
		Visibility: model.Visibility(strings.ToUpper(r.Visibility)),
	}
}

// memosWebhookReq covers the fields shared by the Memos webhook payload versions.
type memosWebhookReq struct {
	ActivityType string `json:"activityType"`
	Memo         struct {
		Name string `json:"name"`
		ID   int64  `json:"id"`
	} `json:"memo"`
}

func (r memosWebhookReq) triggersSync() bool {
	switch r.ActivityType {
	case "memos.memo.created", "memos.memo.updated":
		return true
	}
	return false
}

// --- Response DTOs ---

type memoResp struct {
	ID         int64             `json:"id"`
	Content    string            `json:"content"`
	Visibility string            `json:"visibility"`
	RowStatus  string            `json:"row_status"`
	Pinned     bool              `json:"pinned"`
	CreatedAt  response.DateTime `json:"created_at"`
	UpdatedAt  response.DateTime `json:"updated_at"`
}

func newMemoResp(m model.Memo) memoResp {
	return memoResp{
		ID:         m.ID,
		Content:    m.Content,
		Visibility: string(m.Visibility),
		RowStatus:  string(m.RowStatus),
		Pinned:     m.Pinned,
		CreatedAt:  response.UnixDateTime(m.CreatedTs),
		UpdatedAt:  response.UnixDateTime(m.UpdatedTs),
	}
}

type blockResp struct {
	UUID       string         `json:"uuid"`
	ParentUUID string         `json:"parent_uuid,omitempty"`
	Position   int            `json:"position"`
	Content    string         `json:"content"`
	Properties map[string]any `json:"properties,omitempty"`
}

type pageResp struct {
	Page   string      `json:"page"`
	Blocks []blockResp `json:"blocks"`
}

func newPageResp(name string, blocks []graph.Block) pageResp {
	resp := pageResp{Page: name, Blocks: make([]blockResp, 0, len(blocks))}
	for _, b := range blocks {
		resp.Blocks = append(resp.Blocks, blockResp{
			UUID:       b.UUID,
			ParentUUID: b.ParentUUID,
			Position:   b.Position,
			Content:    b.Content,
			Properties: b.Properties,
		})
	}
	return resp
}
