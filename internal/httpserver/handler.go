package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"memos-graph-sync/internal/model"
	syncHTTP "memos-graph-sync/internal/sync/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if srv.syncHandler == nil {
		srv.l.Infof(ctx, "Sync handler not configured, skipping sync routes")
		return nil
	}

	var webhooks *gin.RouterGroup
	if srv.webhookEnabled {
		webhooks = srv.gin.Group("/webhook")
		srv.l.Infof(ctx, "Memos webhook route registered at POST /webhook/memos")
	} else {
		srv.l.Infof(ctx, "Memos webhook disabled")
	}

	syncHTTP.RegisterRoutes(srv.gin.Group("/api/v1"), webhooks, srv.syncHandler)
	srv.l.Infof(ctx, "Sync routes registered under /api/v1")
	return nil
}
