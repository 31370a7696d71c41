package sync

import (
	"strings"

	"memos-graph-sync/internal/model"
	"memos-graph-sync/internal/transform"
)

// Mode decides which page imported memos land on.
type Mode string

const (
	// ModeCustomPage appends every memo to one configured page.
	ModeCustomPage Mode = "custom_page"
	// ModeJournal appends memos to the journal page of their creation date.
	ModeJournal Mode = "journal"
	// ModeJournalGrouped is ModeJournal without the #memos tag on the parent block.
	ModeJournalGrouped Mode = "journal_grouped"
)

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeCustomPage, ModeJournal, ModeJournalGrouped:
		return true
	}
	return false
}

const (
	DefaultCustomPage = "Memos"
	DefaultDateFormat = "2006-01-02"
	DefaultPageSize   = 50
)

// Options configures a UseCase.
type Options struct {
	Mode            Mode
	CustomPage      string
	DateFormat      string // Go time layout for journal page names
	PageSize        int
	IncludeArchived bool
	TagFilter       []string
	Render          transform.Options
}

// RunInput describes one sync run.
type RunInput struct {
	Full    bool   // ignore the stored watermark
	Trigger string // e.g. "manual", "schedule", "webhook"
}

// RunOutput summarizes a sync run.
type RunOutput struct {
	TraceID   string `json:"trace_id"`
	Pages     int    `json:"pages"`
	Fetched   int    `json:"fetched"`
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	Watermark int64  `json:"watermark"`
}

// PushInput is a local edit to send back to Memos. When MemoID is zero it is
// read from the block Properties.
type PushInput struct {
	MemoID     int64            `json:"memo_id"`
	Properties map[string]any   `json:"properties,omitempty"`
	Content    string           `json:"content"`
	Visibility model.Visibility `json:"visibility"`
	Archive    bool             `json:"archive"`
}

// CreateInput is a new memo.
type CreateInput struct {
	Content    string           `json:"content"`
	Visibility model.Visibility `json:"visibility"`
}

// TagFilterList parses "work| ideas |" into ["#work", "#ideas"].
func TagFilterList(tagFilter string) []string {
	if strings.TrimSpace(tagFilter) == "" {
		return nil
	}
	var tags []string
	for _, item := range strings.Split(tagFilter, "|") {
		tag := "#" + strings.TrimSpace(item)
		if tag != "#" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// MatchesTags reports whether content mentions any of tags. An empty filter matches everything.
func MatchesTags(content string, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		if strings.Contains(content, tag) {
			return true
		}
	}
	return false
}
