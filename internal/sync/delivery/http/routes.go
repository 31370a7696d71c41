package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the sync API under api and the Memos webhook under webhooks.
// A nil webhooks group leaves the webhook unregistered.
func RegisterRoutes(api *gin.RouterGroup, webhooks *gin.RouterGroup, h Handler) {
	syncGroup := api.Group("/sync")
	{
		syncGroup.POST("", h.Sync)
		syncGroup.GET("/status", h.Status)
	}

	memosGroup := api.Group("/memos")
	{
		memosGroup.POST("", h.CreateMemo)
		memosGroup.PATCH("/:id", h.UpdateMemo)
	}

	api.POST("/blocks/push", h.PushBlock)
	api.GET("/pages/:name/blocks", h.ListPage)

	if webhooks != nil {
		webhooks.POST("/memos", h.MemosWebhook)
	}
}
