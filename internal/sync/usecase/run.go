package usecase

import (
	"context"

	"github.com/google/uuid"

	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
	pkgLog "memos-graph-sync/pkg/log"
)

// Run pulls memos page by page, newest first, and appends the unseen ones to the graph.
// The watermark only moves forward, and only when every candidate memo was handled.
func (uc *implUseCase) Run(ctx context.Context, input memoSync.RunInput) (memoSync.RunOutput, error) {
	if !uc.running.CompareAndSwap(false, true) {
		return memoSync.RunOutput{}, memoSync.ErrRunInProgress
	}
	defer uc.running.Store(false)
	// The cursor belongs to this run only.
	defer uc.client.ResetCursor()

	traceID := uuid.NewString()
	ctx = pkgLog.WithTraceID(ctx, traceID)

	persisted := uc.status.LoadWatermark(ctx)
	watermark := persisted
	if input.Full {
		watermark = model.SyncWatermark{LastSyncTimestamp: model.NoWatermark}
	}

	out := memoSync.RunOutput{TraceID: traceID, Watermark: persisted.LastSyncTimestamp}
	maxTs := watermark.LastSyncTimestamp

	uc.l.Infof(ctx, "sync.usecase.Run: started trigger=%s full=%t watermark=%d", input.Trigger, input.Full, watermark.LastSyncTimestamp)

	for isFirst := true; ; isFirst = false {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		page, err := uc.client.ListMemos(ctx, uc.opts.PageSize, isFirst, uc.opts.IncludeArchived)
		if err != nil {
			uc.l.Errorf(ctx, "sync.usecase.Run: list memos failed after %d pages: %v", out.Pages, err)
			return out, err
		}
		if len(page) == 0 {
			break
		}
		out.Pages++
		out.Fetched += len(page)

		// Pinned memos are listed ahead of the rest regardless of age, so only
		// unpinned ones tell whether the feed has reached the watermark.
		var fresh, stale int
		for _, memo := range page {
			if watermark.IsSet() && memo.UpdatedTs <= watermark.LastSyncTimestamp {
				if !memo.Pinned {
					stale++
				}
				out.Skipped++
				continue
			}
			if !memo.Pinned {
				fresh++
			}

			imported, err := uc.importMemo(ctx, memo)
			switch {
			case err != nil:
				out.Failed++
				continue
			case imported:
				out.Imported++
			default:
				out.Skipped++
			}
			if memo.UpdatedTs > maxTs {
				maxTs = memo.UpdatedTs
			}
		}

		// Unpinned memos are ordered newest first, so once they are all stale
		// the remaining pages hold nothing new.
		if watermark.IsSet() && fresh == 0 && stale > 0 {
			break
		}
	}

	if out.Failed > 0 {
		uc.l.Warnf(ctx, "sync.usecase.Run: %d memos failed, watermark stays at %d", out.Failed, persisted.LastSyncTimestamp)
	} else if maxTs > persisted.LastSyncTimestamp {
		if err := uc.status.SaveWatermark(ctx, maxTs); err != nil {
			uc.l.Errorf(ctx, "sync.usecase.Run: save watermark failed: %v", err)
			return out, err
		}
		out.Watermark = maxTs
	}

	uc.l.Infof(ctx, "sync.usecase.Run: done pages=%d fetched=%d imported=%d skipped=%d failed=%d watermark=%d",
		out.Pages, out.Fetched, out.Imported, out.Skipped, out.Failed, out.Watermark)
	return out, nil
}

// importMemo returns true when the memo was written to the graph.
func (uc *implUseCase) importMemo(ctx context.Context, memo model.Memo) (bool, error) {
	if !memoSync.MatchesTags(memo.Content, uc.opts.TagFilter) {
		return false, nil
	}

	existing, err := uc.store.FindByMemoID(ctx, memo.ID)
	if err != nil {
		uc.l.Errorf(ctx, "sync.usecase.importMemo: lookup memo %d failed: %v", memo.ID, err)
		return false, err
	}
	if existing != nil {
		uc.l.Debugf(ctx, "sync.usecase.importMemo: memo %d already in graph as %s", memo.ID, existing.UUID)
		return false, nil
	}

	blocks := uc.renderer.Render(ctx, memo, uc.opts.Render)
	if len(blocks) == 0 {
		return false, nil
	}

	pageName, parent := uc.placement(memo)
	parent.Children = blocks
	if _, err := uc.store.InsertTree(ctx, pageName, parent); err != nil {
		uc.l.Errorf(ctx, "sync.usecase.importMemo: insert memo %d into %q failed: %v", memo.ID, pageName, err)
		return false, err
	}
	return true, nil
}
