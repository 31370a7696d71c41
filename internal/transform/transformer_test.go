package transform_test

import (
	"context"
	"testing"

	"memos-graph-sync/internal/attachment"
	"memos-graph-sync/internal/model"
	"memos-graph-sync/internal/transform"
)

type fakeResolver struct {
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, res model.Resource, memo model.Memo, opt attachment.Options) *model.BlockPayload {
	f.calls++
	if res.Filename == "skip" {
		return nil
	}
	return &model.BlockPayload{Content: "![" + res.Filename + "](link)"}
}

func TestRender(t *testing.T) {
	ctx := context.Background()

	t.Run("splits at checkboxes", func(t *testing.T) {
		tr := transform.New(nil)
		memo := model.Memo{ID: 7, Content: "* [ ] a\n* [x] b\nplain"}

		blocks := tr.Render(ctx, memo, transform.Options{PreferredTodo: "TODO"})
		want := []string{"TODO  a ", "DONE  b ", "\nplain"}
		if len(blocks) != len(want) {
			t.Fatalf("expected %d blocks, got %d: %+v", len(want), len(blocks), blocks)
		}
		for i, b := range blocks {
			if b.Content != want[i] {
				t.Errorf("block %d: expected %q, got %q", i, want[i], b.Content)
			}
			if _, ok := b.Properties[model.PropertyMemoID]; ok {
				t.Errorf("block %d: memo-id property must be absent", i)
			}
		}
	})

	t.Run("normalizes list markers and uses the preferred keyword", func(t *testing.T) {
		tr := transform.New(nil)
		memo := model.Memo{ID: 7, Content: "intro\n- [ ] call bob\n- note"}

		blocks := tr.Render(ctx, memo, transform.Options{PreferredTodo: "LATER"})
		if len(blocks) != 3 {
			t.Fatalf("expected 3 blocks, got %+v", blocks)
		}
		if blocks[0].Content != "intro\n" || blocks[1].Content != "LATER  call bob " || blocks[2].Content != "\n* note" {
			t.Errorf("unexpected blocks %+v", blocks)
		}
	})

	t.Run("default keyword and dollar signs", func(t *testing.T) {
		tr := transform.New(nil)
		blocks := tr.Render(ctx, model.Memo{Content: "* [ ] pay $5"}, transform.Options{})
		if len(blocks) != 1 || blocks[0].Content != "TODO  pay $5 " {
			t.Errorf("unexpected blocks %+v", blocks)
		}
	})

	t.Run("keeps segment indentation", func(t *testing.T) {
		tr := transform.New(nil)
		blocks := tr.Render(ctx, model.Memo{Content: "    code line\n* [ ] a"}, transform.Options{})
		if len(blocks) != 2 || blocks[0].Content != "    code line\n" || blocks[1].Content != "TODO  a " {
			t.Errorf("unexpected blocks %+v", blocks)
		}
	})

	t.Run("whitespace only content yields nothing", func(t *testing.T) {
		tr := transform.New(nil)
		if blocks := tr.Render(ctx, model.Memo{Content: "  \n\t"}, transform.Options{}); len(blocks) != 0 {
			t.Errorf("expected no blocks, got %+v", blocks)
		}
	})

	t.Run("memo id and shared attachment children", func(t *testing.T) {
		resolver := &fakeResolver{}
		tr := transform.New(resolver)
		memo := model.Memo{
			ID:      42,
			Content: "* [ ] one\n* [ ] two",
			ResourceList: []model.Resource{
				{Filename: "first.png"},
				{Filename: "skip"},
				{Filename: "second.png"},
			},
		}

		blocks := tr.Render(ctx, memo, transform.Options{
			IncludeMemoID: true,
			Attachments:   attachment.Options{Mode: attachment.ModeLink},
		})
		if len(blocks) != 2 {
			t.Fatalf("expected 2 blocks, got %+v", blocks)
		}
		if resolver.calls != 3 {
			t.Errorf("expected attachments resolved once per resource, got %d calls", resolver.calls)
		}
		for i, b := range blocks {
			if b.Properties[model.PropertyMemoID] != int64(42) {
				t.Errorf("block %d: unexpected properties %+v", i, b.Properties)
			}
			if len(b.Children) != 2 || b.Children[0].Content != "![first.png](link)" || b.Children[1].Content != "![second.png](link)" {
				t.Errorf("block %d: unexpected children %+v", i, b.Children)
			}
		}
	})

	t.Run("disabled attachments are never resolved", func(t *testing.T) {
		resolver := &fakeResolver{}
		tr := transform.New(resolver)
		memo := model.Memo{Content: "text", ResourceList: []model.Resource{{Filename: "a.png"}}}

		blocks := tr.Render(ctx, memo, transform.Options{Attachments: attachment.Options{Mode: attachment.ModeDisabled}})
		if resolver.calls != 0 {
			t.Errorf("expected no resolver calls, got %d", resolver.calls)
		}
		if len(blocks) != 1 || len(blocks[0].Children) != 0 {
			t.Errorf("unexpected blocks %+v", blocks)
		}
	})
}

func TestStripSyncArtifacts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "todo and memo id", in: "TODO buy milk\nmemo-id:: 42", want: "- [ ] buy milk"},
		{name: "now and doing", in: "NOW write\nDOING read", want: "- [ ] write\n- [ ] read"},
		{name: "done", in: "DONE ship it", want: "- [x] ship it"},
		{name: "all property lines", in: "text\nmemoid:: 1\nmemo-visibility:: PUBLIC\nmore", want: "text\nmore"},
		{name: "property key is case sensitive", in: "text\nMemo-Id:: 1", want: "text\nMemo-Id:: 1"},
		{name: "plain text untouched", in: "nothing to do", want: "nothing to do"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := transform.StripSyncArtifacts(tc.in); got != tc.want {
				t.Errorf("StripSyncArtifacts(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
