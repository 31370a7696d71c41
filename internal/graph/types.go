package graph

import (
	"strconv"

	"memos-graph-sync/internal/model"
)

// Block is a persisted graph block.
type Block struct {
	UUID       string         `json:"uuid"`
	PageName   string         `json:"page"`
	ParentUUID string         `json:"parent,omitempty"`
	Position   int            `json:"position"`
	Content    string         `json:"content"`
	Properties map[string]any `json:"properties,omitempty"`
}

// MemoIDFromProperties reads the memo id a block was imported from.
// Numbers and numeric strings are accepted.
func MemoIDFromProperties(props map[string]any) (int64, bool) {
	for _, key := range []string{model.PropertyMemoID, model.PropertyMemoIDLegacy, "memoId"} {
		v, ok := props[key]
		if !ok || v == nil {
			continue
		}
		switch id := v.(type) {
		case int:
			return int64(id), true
		case int64:
			return id, true
		case float64:
			return int64(id), true
		case string:
			if n, err := strconv.ParseInt(id, 10, 64); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
