// Package handlers provides HTTP API request handlers.
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/remote-browser-stream/backend/internal/ws"
)

// StreamHandler handles WebSocket connections for frame streaming.
type StreamHandler struct {
	wsHandler *ws.Handler
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(wsHandler *ws.Handler) *StreamHandler {
	return &StreamHandler{
		wsHandler: wsHandler,
	}
}

// Stream handles WS /api/screenshot/stream - attaches a viewer. Once the
// upgrade succeeds the connection receives binary JPEG frames at the fixed
// cadence until it disconnects.
func (h *StreamHandler) Stream(c *gin.Context) {
	if err := h.wsHandler.HandleConnection(c.Writer, c.Request); err != nil {
		// Upgrade failures already wrote their response.
		return
	}
}

// RegisterRoutes registers the streaming route on a Gin router group.
func (h *StreamHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/screenshot/stream", h.Stream)
}
