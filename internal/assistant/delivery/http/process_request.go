package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processBookReq binds the booking body and parses its times.
func (h *handler) processBookReq(c *gin.Context) (bookReq, error) {
	var req bookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate(h.loc)
}
