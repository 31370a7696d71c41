package transform

import (
	"context"
	"regexp"
	"strings"

	"memos-graph-sync/internal/attachment"
	"memos-graph-sync/internal/model"
)

const (
	// blockBreak separates the blocks a memo is split into. It never survives rendering.
	blockBreak = "!!!-!!!"

	DefaultTodoKeyword = "TODO"
	doneKeyword        = "DONE"
)

var (
	listMarkerPattern = regexp.MustCompile(`(?m)^[-*] `)
	openTodoPattern   = regexp.MustCompile(`(?m)^\* \[ \](.*)`)
	doneTodoPattern   = regexp.MustCompile(`(?m)^\* \[x\](.*)`)
)

// AttachmentResolver builds the block for a single memo attachment.
type AttachmentResolver interface {
	Resolve(ctx context.Context, res model.Resource, memo model.Memo, opt attachment.Options) *model.BlockPayload
}

// Options controls how a memo is rendered into blocks.
type Options struct {
	PreferredTodo string
	IncludeMemoID bool
	Attachments   attachment.Options
}

// Transformer converts memo markdown into graph blocks.
type Transformer struct {
	resolver AttachmentResolver
}

// New creates a Transformer.
func New(resolver AttachmentResolver) *Transformer {
	return &Transformer{resolver: resolver}
}

// Render splits memo.Content into blocks at every checkbox line. Each top-level
// block receives the same attachment children, in resource order.
func (t *Transformer) Render(ctx context.Context, memo model.Memo, opt Options) []model.BlockPayload {
	todo := opt.PreferredTodo
	if todo == "" {
		todo = DefaultTodoKeyword
	}

	content := listMarkerPattern.ReplaceAllString(memo.Content, "* ")
	content = openTodoPattern.ReplaceAllString(content, blockBreak+literal(todo)+" ${1} "+blockBreak)
	content = doneTodoPattern.ReplaceAllString(content, blockBreak+doneKeyword+" ${1} "+blockBreak)

	children := t.attachments(ctx, memo, opt.Attachments)

	var blocks []model.BlockPayload
	for _, segment := range strings.Split(content, blockBreak) {
		// Whitespace-only segments are dropped; the rest keep their exact text.
		if strings.TrimSpace(segment) == "" {
			continue
		}

		block := model.BlockPayload{
			Content:    segment,
			Properties: map[string]any{},
			Children:   children,
		}
		if opt.IncludeMemoID {
			block.Properties[model.PropertyMemoID] = memo.ID
		}
		blocks = append(blocks, block)
	}
	return blocks
}

func (t *Transformer) attachments(ctx context.Context, memo model.Memo, opt attachment.Options) []model.BlockPayload {
	if opt.Mode == attachment.ModeDisabled || t.resolver == nil || len(memo.ResourceList) == 0 {
		return nil
	}

	children := make([]model.BlockPayload, 0, len(memo.ResourceList))
	for _, res := range memo.ResourceList {
		if block := t.resolver.Resolve(ctx, res, memo, opt); block != nil {
			children = append(children, *block)
		}
	}
	return children
}

// literal escapes s for use in a regexp replacement template.
func literal(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
