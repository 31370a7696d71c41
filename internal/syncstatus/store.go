package syncstatus

import (
	"context"
	"encoding/json"
	"fmt"

	"memos-graph-sync/internal/model"
	pkgLog "memos-graph-sync/pkg/log"
)

// SettingsKey is the settings document holding the sync watermark.
const SettingsKey = "syncStatus"

// status is the persisted document. The legacy lastSyncId field is read in LoadWatermark only.
type status struct {
	LastSyncTimestamp int64 `json:"lastSyncTimestamp"`
}

// Store loads and saves the sync watermark.
type Store struct {
	repo SettingsRepository
	l    pkgLog.Logger
}

// New creates a Store.
func New(repo SettingsRepository, l pkgLog.Logger) *Store {
	return &Store{repo: repo, l: l}
}

// LoadWatermark returns the persisted watermark. Missing, unreadable and legacy
// id-based state all yield model.NoWatermark, which forces a full resync.
func (s *Store) LoadWatermark(ctx context.Context) model.SyncWatermark {
	none := model.SyncWatermark{LastSyncTimestamp: model.NoWatermark}

	raw, ok, err := s.repo.Load(ctx, SettingsKey)
	if err != nil {
		s.l.Errorf(ctx, "syncstatus: failed to load sync status: %v", err)
		return none
	}
	if !ok {
		return none
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		s.l.Warnf(ctx, "syncstatus: ignoring unreadable sync status: %v", err)
		return none
	}

	if ts, ok := number(fields["lastSyncTimestamp"]); ok {
		return model.SyncWatermark{LastSyncTimestamp: ts}
	}
	if legacyID, ok := number(fields["lastSyncId"]); ok {
		s.l.Infof(ctx, "syncstatus: migrating from lastSyncId %d to lastSyncTimestamp, running a full sync", legacyID)
		return none
	}
	return none
}

// SaveWatermark overwrites the persisted watermark.
func (s *Store) SaveWatermark(ctx context.Context, lastSyncTimestamp int64) error {
	raw, err := json.Marshal(status{LastSyncTimestamp: lastSyncTimestamp})
	if err != nil {
		return fmt.Errorf("failed to encode sync status: %w", err)
	}
	if err := s.repo.Save(ctx, SettingsKey, raw); err != nil {
		return fmt.Errorf("failed to save sync status: %w", err)
	}
	s.l.Debugf(ctx, "syncstatus: saved lastSyncTimestamp %d", lastSyncTimestamp)
	return nil
}

// number decodes a JSON number; strings, nulls and missing fields are rejected.
func number(raw json.RawMessage) (int64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, false
	}
	return int64(f), true
}
