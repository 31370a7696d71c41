package graph_test

import (
	"testing"

	"memos-graph-sync/internal/graph"
)

func TestMemoIDFromProperties(t *testing.T) {
	tests := []struct {
		name  string
		props map[string]any
		want  int64
		ok    bool
	}{
		{name: "current key", props: map[string]any{"memo-id": int64(42)}, want: 42, ok: true},
		{name: "legacy key as float", props: map[string]any{"memoid": float64(7)}, want: 7, ok: true},
		{name: "camel case string", props: map[string]any{"memoId": "13"}, want: 13, ok: true},
		{name: "garbage", props: map[string]any{"memo-id": "abc"}, ok: false},
		{name: "nil map", props: nil, ok: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := graph.MemoIDFromProperties(tc.props)
			if ok != tc.ok || got != tc.want {
				t.Errorf("got %d %v, want %d %v", got, ok, tc.want, tc.ok)
			}
		})
	}
}
