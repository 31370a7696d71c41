package legacy

import "encoding/json"

// memo is the memo object of pre-v1 Memos servers (numeric ids, Unix timestamps).
type memo struct {
	ID           int64             `json:"id"`
	RowStatus    string            `json:"rowStatus"`
	CreatorID    int64             `json:"creatorId"`
	CreatorName  string            `json:"creatorName"`
	CreatedTs    int64             `json:"createdTs"`
	UpdatedTs    int64             `json:"updatedTs"`
	DisplayTs    int64             `json:"displayTs"`
	Content      string            `json:"content"`
	Visibility   string            `json:"visibility"`
	Pinned       bool              `json:"pinned"`
	ResourceList []resource        `json:"resourceList"`
	RelationList []json.RawMessage `json:"relationList"`
}

type resource struct {
	ID           int64  `json:"id"`
	Filename     string `json:"filename"`
	ExternalLink string `json:"externalLink"`
}

// envelope is the {"data": ...} wrapper used by the oldest servers.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type createMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

type updateMemoRequest struct {
	Content    string `json:"content,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	RowStatus  string `json:"rowStatus,omitempty"`
}
