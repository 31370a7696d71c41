package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"memos-graph-sync/internal/graph"
	"memos-graph-sync/internal/model"
	memoSync "memos-graph-sync/internal/sync"
	syncHTTP "memos-graph-sync/internal/sync/delivery/http"
	"memos-graph-sync/pkg/log"
	"memos-graph-sync/pkg/response"
)

type stubUseCase struct{}

func (stubUseCase) Run(ctx context.Context, input memoSync.RunInput) (memoSync.RunOutput, error) {
	return memoSync.RunOutput{TraceID: "t"}, nil
}
func (stubUseCase) Push(ctx context.Context, input memoSync.PushInput) (model.Memo, error) {
	return model.Memo{}, nil
}
func (stubUseCase) Create(ctx context.Context, input memoSync.CreateInput) (model.Memo, error) {
	return model.Memo{}, nil
}
func (stubUseCase) Running() bool { return false }

type stubStore struct{}

func (stubStore) FindByMemoID(ctx context.Context, memoID int64) (*graph.Block, error) {
	return nil, nil
}
func (stubStore) InsertTree(ctx context.Context, pageName string, root model.BlockPayload) (graph.Block, error) {
	return graph.Block{}, nil
}
func (stubStore) ListPage(ctx context.Context, pageName string) ([]graph.Block, error) {
	return nil, nil
}

func get(t *testing.T, h http.Handler, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(nil, Config{Port: 1, Mode: gin.TestMode}); err == nil {
		t.Errorf("expected logger error")
	}
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Errorf("expected port error")
	}
	if _, err := New(log.NewNop(), Config{Port: 1}); err == nil {
		t.Errorf("expected mode error")
	}
}

func TestSystemRoutes(t *testing.T) {
	ready := false
	srv, err := New(log.NewNop(), Config{
		Port:  8080,
		Mode:  gin.TestMode,
		Ready: func() bool { return ready },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, path := range []string{"/health", "/live"} {
		w := get(t, srv.Handler(), http.MethodGet, path)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}

	if w := get(t, srv.Handler(), http.MethodGet, "/ready"); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 before ready, got %d", w.Code)
	}
	ready = true
	w := get(t, srv.Handler(), http.MethodGet, "/ready")
	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	if w.Code != http.StatusOK || resp.ErrorCode != 0 {
		t.Errorf("expected ready, got %d %+v", w.Code, resp)
	}
}

func TestDomainRoutes(t *testing.T) {
	h := syncHTTP.New(log.NewNop(), stubUseCase{}, stubStore{}, syncHTTP.Config{})

	t.Run("webhook disabled", func(t *testing.T) {
		srv, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode, SyncHandler: h})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w := get(t, srv.Handler(), http.MethodGet, "/api/v1/sync/status"); w.Code != http.StatusOK {
			t.Errorf("expected sync routes, got %d", w.Code)
		}
		if w := get(t, srv.Handler(), http.MethodPost, "/webhook/memos"); w.Code != http.StatusNotFound {
			t.Errorf("expected no webhook route, got %d", w.Code)
		}
	})

	t.Run("webhook enabled", func(t *testing.T) {
		srv, err := New(log.NewNop(), Config{Port: 8080, Mode: gin.TestMode, SyncHandler: h, WebhookEnabled: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Empty body is rejected by the handler, which proves the route exists.
		if w := get(t, srv.Handler(), http.MethodPost, "/webhook/memos"); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 from webhook handler, got %d", w.Code)
		}
	})
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, err := New(log.NewNop(), Config{Port: 18089, Mode: gin.TestMode})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
