package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"memos-graph-sync/internal/graph"
	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
	"memos-graph-sync/internal/transform"
	pkgLog "memos-graph-sync/pkg/log"
)

// WatermarkStore persists the sync high-water mark.
type WatermarkStore interface {
	LoadWatermark(ctx context.Context) model.SyncWatermark
	SaveWatermark(ctx context.Context, lastSyncTimestamp int64) error
}

// Renderer turns a memo into top-level blocks.
type Renderer interface {
	Render(ctx context.Context, memo model.Memo, opt transform.Options) []model.BlockPayload
}

type implUseCase struct {
	l        pkgLog.Logger
	client   memos.Client
	store    graph.Store
	status   WatermarkStore
	renderer Renderer
	opts     memoSync.Options
	location *time.Location

	running atomic.Bool
}

// New creates a new sync UseCase instance. Journal page names are computed in loc (time.Local when nil).
func New(
	l pkgLog.Logger,
	client memos.Client,
	store graph.Store,
	status WatermarkStore,
	renderer Renderer,
	opts memoSync.Options,
	loc *time.Location,
) memoSync.UseCase {
	if !opts.Mode.Valid() {
		opts.Mode = memoSync.ModeCustomPage
	}
	if opts.CustomPage == "" {
		opts.CustomPage = memoSync.DefaultCustomPage
	}
	if opts.DateFormat == "" {
		opts.DateFormat = memoSync.DefaultDateFormat
	}
	if opts.PageSize <= 0 {
		opts.PageSize = memoSync.DefaultPageSize
	}
	if loc == nil {
		loc = time.Local
	}
	return &implUseCase{
		l:        l,
		client:   client,
		store:    store,
		status:   status,
		renderer: renderer,
		opts:     opts,
		location: loc,
	}
}

func (uc *implUseCase) Running() bool {
	return uc.running.Load()
}
