package http

import (
	"github.com/gin-gonic/gin"

	"memos-graph-sync/pkg/response"
)

// Sync runs a sync in the request context and returns its summary.
// POST /api/v1/sync {"full": bool}
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Run(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, output)
}

// Status reports whether a run is in flight.
// GET /api/v1/sync/status
func (h *handler) Status(c *gin.Context) {
	response.OK(c, gin.H{"running": h.uc.Running()})
}

// CreateMemo posts a new memo to the server.
// POST /api/v1/memos
func (h *handler) CreateMemo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateMemoReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	memo, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMemoResp(memo))
}

// UpdateMemo pushes an edit of memo :id back to the server.
// PATCH /api/v1/memos/:id
func (h *handler) UpdateMemo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateMemoReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	memo, err := h.uc.Push(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Push: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMemoResp(memo))
}

// PushBlock pushes a graph block back to the memo it was imported from.
// POST /api/v1/blocks/push
func (h *handler) PushBlock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPushBlockReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	memo, err := h.uc.Push(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Push: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newMemoResp(memo))
}

// ListPage returns the blocks stored on a page.
// GET /api/v1/pages/:name/blocks
func (h *handler) ListPage(c *gin.Context) {
	ctx := c.Request.Context()

	name := c.Param("name")
	if name == "" {
		response.Error(c, errInvalidPage, nil)
		return
	}

	blocks, err := h.store.ListPage(ctx, name)
	if err != nil {
		h.l.Errorf(ctx, "store.ListPage: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newPageResp(name, blocks))
}

func (h *handler) respondError(c *gin.Context, err error) {
	if status := h.mapError(err); status != 0 {
		response.ErrorWithStatus(c, status, err, nil)
		return
	}
	response.InternalError(c, err)
}
