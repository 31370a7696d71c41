package model

// BlockPayload is the unit handed to the local note graph.
type BlockPayload struct {
	Content    string         `json:"content"`
	Properties map[string]any `json:"properties,omitempty"`
	Children   []BlockPayload `json:"children,omitempty"`
}

// SyncWatermark is the persisted boundary below which memos are considered synced.
type SyncWatermark struct {
	LastSyncTimestamp int64
}

// NoWatermark forces a full resync.
const NoWatermark int64 = -1

// IsSet reports whether the watermark points at a real timestamp.
func (w SyncWatermark) IsSet() bool {
	return w.LastSyncTimestamp >= 0
}

// Block properties that link a graph block back to its memo. Older imports used PropertyMemoIDLegacy.
const (
	PropertyMemoID       = "memo-id"
	PropertyMemoIDLegacy = "memoid"
)
