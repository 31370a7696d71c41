package legacy

import (
	"context"
	"encoding/json"
	"strconv"

	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/model"
)

// unwrap strips the {"data": ...} envelope when present.
func unwrap(raw json.RawMessage) json.RawMessage {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		return env.Data
	}
	return raw
}

// decodePage accepts a bare array or an enveloped one and degrades to an empty page otherwise.
func (c *Client) decodePage(ctx context.Context, raw json.RawMessage) []memo {
	var page []memo
	if err := json.Unmarshal(unwrap(raw), &page); err != nil {
		c.l.Warnf(ctx, "memos legacy: %v, memo list is not an array: %v", memos.ErrMalformedResponse, err)
		return nil
	}
	return page
}

func (c *Client) decodeOne(raw json.RawMessage) (model.Memo, error) {
	var m memo
	if err := json.Unmarshal(unwrap(raw), &m); err != nil {
		return model.Memo{}, &memos.FetchError{Op: "decode", Err: memos.ConnectionFailure(err)}
	}
	return c.toModel(m), nil
}

// toModel converts a legacy memo. The server id is already numeric and is recorded as is.
func (c *Client) toModel(m memo) model.Memo {
	name := "memos/" + strconv.FormatInt(m.ID, 10)
	c.ids.Remember(m.ID, name)

	list := make([]model.Resource, 0, len(m.ResourceList))
	for _, r := range m.ResourceList {
		list = append(list, model.Resource{
			ID:           strconv.FormatInt(r.ID, 10),
			Filename:     r.Filename,
			ExternalLink: r.ExternalLink,
		})
	}

	return model.Memo{
		ID:           m.ID,
		Content:      m.Content,
		CreatedTs:    m.CreatedTs,
		UpdatedTs:    m.UpdatedTs,
		DisplayTs:    m.DisplayTs,
		RowStatus:    model.RowStatus(m.RowStatus),
		Visibility:   model.Visibility(m.Visibility),
		Pinned:       m.Pinned,
		CreatorID:    m.CreatorID,
		CreatorName:  m.CreatorName,
		ResourceList: list,
		RelationList: m.RelationList,
		NativeName:   name,
	}
}
