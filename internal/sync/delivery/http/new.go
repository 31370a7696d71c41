package http

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"memos-graph-sync/internal/graph"
	memoSync "memos-graph-sync/internal/sync"
	"memos-graph-sync/pkg/log"
)

const defaultWebhookTimeout = 2 * time.Minute

// Handler is the public interface for the sync HTTP delivery layer.
type Handler interface {
	Sync(c *gin.Context)
	Status(c *gin.Context)
	CreateMemo(c *gin.Context)
	UpdateMemo(c *gin.Context)
	PushBlock(c *gin.Context)
	ListPage(c *gin.Context)
	MemosWebhook(c *gin.Context)

	// Wait blocks until background runs started by webhooks have finished.
	Wait()
}

// Config holds the webhook settings.
type Config struct {
	WebhookSecret   string
	RateLimitPerMin int
	WebhookTimeout  time.Duration
}

type handler struct {
	l        log.Logger
	uc       memoSync.UseCase
	store    graph.Store
	security *securityValidator
	cfg      Config

	wg sync.WaitGroup
}

// New creates a new sync HTTP handler.
func New(l log.Logger, uc memoSync.UseCase, store graph.Store, cfg Config) *handler {
	if cfg.WebhookTimeout <= 0 {
		cfg.WebhookTimeout = defaultWebhookTimeout
	}
	return &handler{
		l:        l,
		uc:       uc,
		store:    store,
		security: newSecurityValidator(cfg.WebhookSecret, cfg.RateLimitPerMin),
		cfg:      cfg,
	}
}

func (h *handler) Wait() {
	h.wg.Wait()
}
