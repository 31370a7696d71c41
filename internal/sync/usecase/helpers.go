package usecase

import (
	"time"

	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
)

const timeLayout = "15:04"

// placement returns the target page and the parent block for memo.
// The parent always carries the memo id so later runs can find it.
func (uc *implUseCase) placement(memo model.Memo) (string, model.BlockPayload) {
	created := time.Unix(memo.CreatedTs, 0).In(uc.location)
	date := created.Format(uc.opts.DateFormat)
	clock := created.Format(timeLayout)

	parent := model.BlockPayload{
		Properties: map[string]any{model.PropertyMemoID: memo.ID},
	}

	switch uc.opts.Mode {
	case memoSync.ModeJournal:
		parent.Content = clock + " #memos"
		return date, parent
	case memoSync.ModeJournalGrouped:
		parent.Content = clock
		return date, parent
	default:
		parent.Content = "[[" + date + "]] " + clock + " #memos"
		return uc.opts.CustomPage, parent
	}
}
