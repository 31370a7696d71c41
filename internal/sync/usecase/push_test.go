package usecase_test

import (
	"context"
	"errors"
	"testing"

	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
)

func TestPush(t *testing.T) {
	t.Run("strips artifacts", func(t *testing.T) {
		client := &mockClient{}
		uc := newUseCase(client, &mockStore{}, &mockStatus{}, memoSync.Options{})

		got, err := uc.Push(context.Background(), memoSync.PushInput{
			MemoID:  4,
			Content: "TODO buy milk\nmemo-id:: 4",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 4 {
			t.Errorf("expected id 4, got %d", got.ID)
		}
		if client.updated[0].Content != "- [ ] buy milk" {
			t.Errorf("unexpected pushed content %q", client.updated[0].Content)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		uc := newUseCase(&mockClient{}, &mockStore{}, &mockStatus{}, memoSync.Options{})
		if _, err := uc.Push(context.Background(), memoSync.PushInput{Content: "x"}); !errors.Is(err, memoSync.ErrInvalidMemoID) {
			t.Errorf("expected ErrInvalidMemoID, got %v", err)
		}
	})

	t.Run("empty patch", func(t *testing.T) {
		uc := newUseCase(&mockClient{}, &mockStore{}, &mockStatus{}, memoSync.Options{})
		if _, err := uc.Push(context.Background(), memoSync.PushInput{MemoID: 1, Content: "  "}); !errors.Is(err, memoSync.ErrEmptyPatch) {
			t.Errorf("expected ErrEmptyPatch, got %v", err)
		}
	})

	t.Run("archive only", func(t *testing.T) {
		client := &mockClient{}
		uc := newUseCase(client, &mockStore{}, &mockStatus{}, memoSync.Options{})
		if _, err := uc.Push(context.Background(), memoSync.PushInput{MemoID: 1, Archive: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !client.updated[0].Archive {
			t.Errorf("expected archive flag")
		}
	})

	t.Run("memo id from properties", func(t *testing.T) {
		client := &mockClient{}
		uc := newUseCase(client, &mockStore{}, &mockStatus{}, memoSync.Options{})
		got, err := uc.Push(context.Background(), memoSync.PushInput{
			Properties: map[string]any{"memoid": "12"},
			Content:    "edited",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != 12 {
			t.Errorf("expected id 12, got %d", got.ID)
		}
	})

	t.Run("discovers id by listing", func(t *testing.T) {
		client := &mockClient{
			requireListed: true,
			pages:         [][]model.Memo{{memo(1, 100, "a")}, {memo(2, 50, "b")}},
		}
		uc := newUseCase(client, &mockStore{}, &mockStatus{}, memoSync.Options{})
		if _, err := uc.Push(context.Background(), memoSync.PushInput{MemoID: 2, Content: "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(client.updated) != 1 {
			t.Errorf("expected one update, got %d", len(client.updated))
		}
		if client.resets == 0 {
			t.Errorf("expected cursor reset after discovery")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		client := &mockClient{updErr: memos.UnknownID(8)}
		uc := newUseCase(client, &mockStore{}, &mockStatus{}, memoSync.Options{})
		if _, err := uc.Push(context.Background(), memoSync.PushInput{MemoID: 8, Content: "x"}); !errors.Is(err, memos.ErrUnknownID) {
			t.Errorf("expected ErrUnknownID, got %v", err)
		}
	})
}

func TestCreate(t *testing.T) {
	client := &mockClient{}
	uc := newUseCase(client, &mockStore{}, &mockStatus{}, memoSync.Options{})

	got, err := uc.Create(context.Background(), memoSync.CreateInput{Content: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Visibility != model.VisibilityPrivate {
		t.Errorf("expected PRIVATE default, got %s", got.Visibility)
	}

	if _, err := uc.Create(context.Background(), memoSync.CreateInput{Content: " "}); !errors.Is(err, memoSync.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent, got %v", err)
	}
}
