package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"memos-graph-sync/internal/graph"
	"memos-graph-sync/internal/model"
)

// memoIDQuery matches either property name; values may be stored as numbers or numeric strings.
const memoIDQuery = `CAST(json_extract(properties, '$."memo-id"') AS INTEGER) = ? OR CAST(json_extract(properties, '$.memoid') AS INTEGER) = ?`

func (r *implRepository) FindByMemoID(ctx context.Context, memoID int64) (*graph.Block, error) {
	var rec blockRecord
	err := r.db.WithContext(ctx).
		Where(memoIDQuery, memoID, memoID).
		Order("id").
		Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query memo %d: %w", memoID, err)
	}

	b := toBlock(rec)
	return &b, nil
}

func (r *implRepository) InsertTree(ctx context.Context, pageName string, root model.BlockPayload) (graph.Block, error) {
	var inserted blockRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&blockRecord{}).
			Where("page_name = ? AND parent_uuid = ?", pageName, "").
			Count(&count).Error; err != nil {
			return err
		}

		rec, err := insertBlock(tx, pageName, "", int(count), root)
		if err != nil {
			return err
		}
		inserted = rec
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "graph sqlite: insert into %s failed: %v", pageName, err)
		return graph.Block{}, fmt.Errorf("failed to insert block tree: %w", err)
	}
	return toBlock(inserted), nil
}

func (r *implRepository) ListPage(ctx context.Context, pageName string) ([]graph.Block, error) {
	var recs []blockRecord
	if err := r.db.WithContext(ctx).
		Where("page_name = ?", pageName).
		Order("id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list page %s: %w", pageName, err)
	}

	blocks := make([]graph.Block, 0, len(recs))
	for _, rec := range recs {
		blocks = append(blocks, toBlock(rec))
	}
	return blocks, nil
}

func insertBlock(tx *gorm.DB, pageName, parent string, position int, payload model.BlockPayload) (blockRecord, error) {
	props := "{}"
	if len(payload.Properties) > 0 {
		raw, err := json.Marshal(payload.Properties)
		if err != nil {
			return blockRecord{}, fmt.Errorf("failed to encode properties: %w", err)
		}
		props = string(raw)
	}

	rec := blockRecord{
		UUID:       uuid.NewString(),
		PageName:   pageName,
		ParentUUID: parent,
		Position:   position,
		Content:    payload.Content,
		Properties: props,
	}
	if err := tx.Create(&rec).Error; err != nil {
		return blockRecord{}, err
	}

	for i, child := range payload.Children {
		if _, err := insertBlock(tx, pageName, rec.UUID, i, child); err != nil {
			return blockRecord{}, err
		}
	}
	return rec, nil
}

func toBlock(rec blockRecord) graph.Block {
	props := map[string]any{}
	if rec.Properties != "" {
		// Stored by insertBlock, so always a JSON object.
		_ = json.Unmarshal([]byte(rec.Properties), &props)
	}
	return graph.Block{
		UUID:       rec.UUID,
		PageName:   rec.PageName,
		ParentUUID: rec.ParentUUID,
		Position:   rec.Position,
		Content:    rec.Content,
		Properties: props,
	}
}
