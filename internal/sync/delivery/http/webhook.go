package http

import (
	"context"

	"github.com/gin-gonic/gin"

	memoSync "memos-graph-sync/internal/sync"
	"memos-graph-sync/pkg/response"
)

const secretHeader = "X-Memos-Secret"

// MemosWebhook starts a background sync when Memos reports a created or updated memo.
// POST /webhook/memos
func (h *handler) MemosWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	secret := c.GetHeader(secretHeader)
	if secret == "" {
		secret = c.Query("secret")
	}
	if err := h.security.validateSecret(secret); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		response.Unauthorized(c)
		return
	}

	source := extractIP(c.Request)
	if err := h.security.checkRateLimit(source); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		response.TooManyRequests(c)
		return
	}

	var req memosWebhookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		response.Error(c, errInvalidPayload, nil)
		return
	}

	if !req.triggersSync() {
		h.l.Infof(ctx, "webhook: ignoring activity %q", req.ActivityType)
		response.OK(c, gin.H{"status": "ignored"})
		return
	}

	h.l.Infof(ctx, "webhook: %s for %s, starting sync", req.ActivityType, req.Memo.Name)

	h.wg.Add(1)
	go h.runAsync()

	// Acknowledge immediately
	response.Accepted(c, gin.H{"status": "accepted"})
}

func (h *handler) runAsync() {
	defer h.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.WebhookTimeout)
	defer cancel()

	output, err := h.uc.Run(ctx, memoSync.RunInput{Trigger: "webhook"})
	if err != nil {
		h.l.Warnf(ctx, "webhook: sync failed: %v", err)
		return
	}
	h.l.Infof(ctx, "webhook: sync %s imported %d memos", output.TraceID, output.Imported)
}
