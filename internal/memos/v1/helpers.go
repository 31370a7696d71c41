package v1

import (
	"strconv"
	"time"

	"memos-graph-sync/internal/memos/idmap"
	"memos-graph-sync/internal/model"
)

// toModel converts a v1 memo into the shared model and records its id mapping.
func (c *Client) toModel(m memoResource) model.Memo {
	resources := m.Resources
	if len(resources) == 0 {
		resources = m.Attachments
	}

	list := make([]model.Resource, 0, len(resources))
	for _, r := range resources {
		list = append(list, toResource(r))
	}

	return model.Memo{
		ID:           c.ids.ToNumericID(m.Name),
		Content:      m.Content,
		CreatedTs:    unixSeconds(m.CreateTime),
		UpdatedTs:    unixSeconds(m.UpdateTime),
		DisplayTs:    unixSeconds(m.DisplayTime),
		RowStatus:    model.RowStatus(status(m)),
		Visibility:   model.Visibility(m.Visibility),
		Pinned:       m.Pinned,
		CreatorID:    creatorID(m.Creator),
		CreatorName:  m.Creator,
		ResourceList: list,
		RelationList: m.Relations,
		NativeName:   m.Name,
	}
}

func toResource(r attachment) model.Resource {
	id := r.UID
	if id == "" {
		id = idmap.LastSegment(r.Name)
	}
	return model.Resource{
		ID:           id,
		Filename:     r.Filename,
		ExternalLink: r.ExternalLink,
	}
}

// status prefers "state" and falls back to the older "rowStatus".
func status(m memoResource) string {
	if m.State != "" {
		return m.State
	}
	return m.RowStatus
}

// unixSeconds parses an RFC 3339 timestamp into Unix seconds; unparsable input yields 0.
func unixSeconds(s string) int64 {
	if s == "" {
		return 0
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return 0
	}
	return t.Unix()
}

// creatorID parses the numeric tail of "users/{id}", or 0.
func creatorID(creator string) int64 {
	id, err := strconv.ParseInt(idmap.LastSegment(creator), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
