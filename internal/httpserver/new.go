package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	syncHTTP "memos-graph-sync/internal/sync/delivery/http"
	"memos-graph-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Sync domain
	syncHandler    syncHTTP.Handler
	webhookEnabled bool
	ready          func() bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Sync domain
	SyncHandler    syncHTTP.Handler
	WebhookEnabled bool

	// Ready reports readiness for /ready; nil means always ready.
	Ready func() bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		syncHandler:    cfg.SyncHandler,
		webhookEnabled: cfg.WebhookEnabled,
		ready:          cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
