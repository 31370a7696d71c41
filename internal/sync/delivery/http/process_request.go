package http

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
)

// processSyncReq binds the optional sync request body.
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, nil
}

// processCreateMemoReq binds and validates the create memo request body.
func (h *handler) processCreateMemoReq(c *gin.Context) (createMemoReq, error) {
	var req createMemoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateMemoReq binds the update body and the numeric id URI param.
func (h *handler) processUpdateMemoReq(c *gin.Context) (updateMemoReq, error) {
	var req updateMemoReq
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return req, errInvalidID
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

func (h *handler) processPushBlockReq(c *gin.Context) (pushBlockReq, error) {
	var req pushBlockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
