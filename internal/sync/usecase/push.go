package usecase

import (
	"context"
	"errors"
	"strings"

	"memos-graph-sync/internal/graph"
	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
	"memos-graph-sync/internal/transform"
)

// Push strips sync artifacts from the edited content and patches the memo on the server.
func (uc *implUseCase) Push(ctx context.Context, input memoSync.PushInput) (model.Memo, error) {
	memoID := input.MemoID
	if memoID == 0 {
		memoID, _ = graph.MemoIDFromProperties(input.Properties)
	}
	if memoID <= 0 {
		return model.Memo{}, memoSync.ErrInvalidMemoID
	}

	content := transform.StripSyncArtifacts(input.Content)
	if strings.TrimSpace(content) == "" && input.Visibility == "" && !input.Archive {
		return model.Memo{}, memoSync.ErrEmptyPatch
	}

	patch := model.MemoPatch{
		Content:    content,
		Visibility: input.Visibility,
		Archive:    input.Archive,
	}

	memo, err := uc.client.UpdateMemo(ctx, memoID, patch)
	if errors.Is(err, memos.ErrUnknownID) && uc.discover(ctx, memoID) {
		memo, err = uc.client.UpdateMemo(ctx, memoID, patch)
	}
	if err != nil {
		uc.l.Errorf(ctx, "sync.usecase.Push: update memo %d failed: %v", memoID, err)
		return model.Memo{}, err
	}

	uc.l.Infof(ctx, "sync.usecase.Push: updated memo %d", memo.ID)
	return memo, nil
}

// discover pages through the server once so the client learns the native name
// behind memoID. It gives up when a run holds the cursor.
func (uc *implUseCase) discover(ctx context.Context, memoID int64) bool {
	if !uc.running.CompareAndSwap(false, true) {
		return false
	}
	defer uc.running.Store(false)
	defer uc.client.ResetCursor()

	for isFirst := true; ; isFirst = false {
		page, err := uc.client.ListMemos(ctx, uc.opts.PageSize, isFirst, true)
		if err != nil {
			uc.l.Warnf(ctx, "sync.usecase.discover: list memos failed: %v", err)
			return false
		}
		if len(page) == 0 {
			return false
		}
		for _, m := range page {
			if m.ID == memoID {
				return true
			}
		}
	}
}

// Create posts a new memo. Visibility defaults to PRIVATE.
func (uc *implUseCase) Create(ctx context.Context, input memoSync.CreateInput) (model.Memo, error) {
	content := transform.StripSyncArtifacts(input.Content)
	if strings.TrimSpace(content) == "" {
		return model.Memo{}, memoSync.ErrEmptyContent
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = model.VisibilityPrivate
	}

	memo, err := uc.client.CreateMemo(ctx, content, visibility)
	if err != nil {
		uc.l.Errorf(ctx, "sync.usecase.Create: create memo failed: %v", err)
		return model.Memo{}, err
	}

	uc.l.Infof(ctx, "sync.usecase.Create: created memo %d", memo.ID)
	return memo, nil
}
