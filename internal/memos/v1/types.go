package v1

import "encoding/json"

// memoResource is the Memos v1 memo object.
type memoResource struct {
	Name        string            `json:"name"`
	State       string            `json:"state"`
	RowStatus   string            `json:"rowStatus"`
	Creator     string            `json:"creator"`
	CreateTime  string            `json:"createTime"`
	UpdateTime  string            `json:"updateTime"`
	DisplayTime string            `json:"displayTime"`
	Content     string            `json:"content"`
	Visibility  string            `json:"visibility"`
	Pinned      bool              `json:"pinned"`
	Resources   []attachment      `json:"resources"`
	Attachments []attachment      `json:"attachments"`
	Relations   []json.RawMessage `json:"relations"`
}

// attachment is a v1 resource (renamed "attachment" on newer servers).
type attachment struct {
	Name         string `json:"name"`
	UID          string `json:"uid"`
	Filename     string `json:"filename"`
	ExternalLink string `json:"externalLink"`
	Type         string `json:"type"`
}

type listMemosResponse struct {
	Memos         json.RawMessage `json:"memos"`
	NextPageToken string          `json:"nextPageToken"`
}

// createMemoRequest is the body for POST /api/v1/memos.
type createMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// updateMemoRequest is the body for PATCH /api/v1/memos/{uid}. Only set fields are sent.
type updateMemoRequest struct {
	Content    string `json:"content,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	RowStatus  string `json:"row_status,omitempty"`
}
