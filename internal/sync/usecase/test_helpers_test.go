package usecase_test

import (
	"context"
	"errors"
	"sync"

	"memos-graph-sync/internal/graph"
	"memos-graph-sync/internal/memos"
	"memos-graph-sync/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockClient serves pages in order; page i is returned on the i-th call after a first-page reset.
type mockClient struct {
	pages   [][]model.Memo
	listErr error
	failAt  int // page index that returns listErr

	next    int
	calls   int
	resets  int
	block   chan struct{}
	updated []model.MemoPatch
	created []string
	updErr  error

	// requireListed makes UpdateMemo fail for ids not yet returned by ListMemos.
	requireListed bool
	seen          map[int64]bool
}

func (m *mockClient) ListMemos(ctx context.Context, pageSize int, isFirstPage, includeArchived bool) ([]model.Memo, error) {
	if m.block != nil {
		<-m.block
	}
	m.calls++
	if isFirstPage {
		m.next = 0
	}
	if m.listErr != nil && m.next == m.failAt {
		return nil, m.listErr
	}
	if m.next >= len(m.pages) {
		return []model.Memo{}, nil
	}
	page := m.pages[m.next]
	m.next++
	if m.seen == nil {
		m.seen = map[int64]bool{}
	}
	for _, memo := range page {
		m.seen[memo.ID] = true
	}
	return page, nil
}

func (m *mockClient) UpdateMemo(ctx context.Context, id int64, patch model.MemoPatch) (model.Memo, error) {
	if m.updErr != nil {
		return model.Memo{}, m.updErr
	}
	if m.requireListed && !m.seen[id] {
		return model.Memo{}, memos.UnknownID(id)
	}
	m.updated = append(m.updated, patch)
	return model.Memo{ID: id, Content: patch.Content, Visibility: patch.Visibility}, nil
}

func (m *mockClient) CreateMemo(ctx context.Context, content string, visibility model.Visibility) (model.Memo, error) {
	m.created = append(m.created, content)
	return model.Memo{ID: 99, Content: content, Visibility: visibility}, nil
}

func (m *mockClient) ResetCursor() { m.resets++ }

type insert struct {
	page string
	root model.BlockPayload
}

type mockStore struct {
	mu        sync.Mutex
	inserts   []insert
	existing  map[int64]bool
	failFor   map[int64]bool
	lookupErr error
}

func (m *mockStore) FindByMemoID(ctx context.Context, memoID int64) (*graph.Block, error) {
	if m.lookupErr != nil {
		return nil, m.lookupErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.existing[memoID] {
		return &graph.Block{UUID: "existing"}, nil
	}
	for _, ins := range m.inserts {
		if id, ok := graph.MemoIDFromProperties(ins.root.Properties); ok && id == memoID {
			return &graph.Block{UUID: "inserted"}, nil
		}
	}
	return nil, nil
}

func (m *mockStore) InsertTree(ctx context.Context, pageName string, root model.BlockPayload) (graph.Block, error) {
	id, _ := graph.MemoIDFromProperties(root.Properties)
	if m.failFor[id] {
		return graph.Block{}, errors.New("disk full")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserts = append(m.inserts, insert{page: pageName, root: root})
	return graph.Block{UUID: "new", PageName: pageName, Content: root.Content}, nil
}

func (m *mockStore) ListPage(ctx context.Context, pageName string) ([]graph.Block, error) {
	return nil, nil
}

type mockStatus struct {
	ts      int64
	saves   []int64
	saveErr error
}

func (m *mockStatus) LoadWatermark(ctx context.Context) model.SyncWatermark {
	return model.SyncWatermark{LastSyncTimestamp: m.ts}
}

func (m *mockStatus) SaveWatermark(ctx context.Context, ts int64) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves = append(m.saves, ts)
	m.ts = ts
	return nil
}
