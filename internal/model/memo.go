package model

import (
	"encoding/json"
	"strings"
)

// RowStatus is the archival state of a memo.
type RowStatus string

const (
	RowStatusNormal   RowStatus = "NORMAL"
	RowStatusArchived RowStatus = "ARCHIVED"
)

// Visibility controls who can read a memo on the Memos server.
type Visibility string

const (
	VisibilityPublic    Visibility = "PUBLIC"
	VisibilityProtected Visibility = "PROTECTED"
	VisibilityPrivate   Visibility = "PRIVATE"
)

// IsPublic reports whether v is PUBLIC, ignoring case.
func (v Visibility) IsPublic() bool {
	return strings.EqualFold(string(v), string(VisibilityPublic))
}

// Memo is a remote note normalized from any supported Memos API version.
type Memo struct {
	ID           int64             // Numeric id derived from NativeName
	Content      string            // Raw markdown body
	CreatedTs    int64             // Unix seconds
	UpdatedTs    int64             // Unix seconds
	DisplayTs    int64             // Unix seconds
	RowStatus    RowStatus         // NORMAL or ARCHIVED
	Visibility   Visibility        // PUBLIC, PROTECTED or PRIVATE
	Pinned       bool              // Pinned on the server
	CreatorID    int64             // Numeric creator id
	CreatorName  string            // e.g. "users/1"
	ResourceList []Resource        // Attachments, in server order
	RelationList []json.RawMessage // Passed through untouched
	NativeName   string            // Server resource name, e.g. "memos/abc123"
}

// Resource is an attachment referenced by a memo.
type Resource struct {
	ID           string
	Filename     string
	ExternalLink string
}

// MemoPatch carries the fields of an update. Zero values are left out of the request.
type MemoPatch struct {
	Content    string
	Visibility Visibility
	Archive    bool
}
