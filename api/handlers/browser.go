// Package handlers provides HTTP API request handlers.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remote-browser-stream/backend/internal/model"
	"github.com/remote-browser-stream/backend/internal/session"
)

// BrowserHandler handles HTTP requests that control the shared page.
type BrowserHandler struct {
	manager *session.Manager
}

// NewBrowserHandler creates a new BrowserHandler.
func NewBrowserHandler(manager *session.Manager) *BrowserHandler {
	return &BrowserHandler{
		manager: manager,
	}
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error details.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// sendError sends an error response with the appropriate status code.
func sendError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// sendCommandError maps a command-layer error onto an HTTP response.
// Failures are per-request; they never affect the session or the viewers.
func sendCommandError(c *gin.Context, err error) {
	if errors.Is(err, model.ErrNotInitialized) {
		sendError(c, http.StatusInternalServerError, "NOT_INITIALIZED", err.Error())
		return
	}
	sendError(c, http.StatusInternalServerError, "OPERATION_FAILED", err.Error())
}

// Hover handles POST /api/browser/hover - moves the pointer.
func (h *BrowserHandler) Hover(c *gin.Context) {
	var payload model.PointerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := payload.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.manager.Hover(c.Request.Context(), *payload.X, *payload.Y)
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Click handles POST /api/browser/click - clicks and reports focus.
func (h *BrowserHandler) Click(c *gin.Context) {
	var payload model.PointerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := payload.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.manager.Click(c.Request.Context(), *payload.X, *payload.Y)
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Scroll handles POST /api/browser/scroll - scrolls by relative deltas.
func (h *BrowserHandler) Scroll(c *gin.Context) {
	var payload model.ScrollPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := payload.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.manager.Scroll(c.Request.Context(), *payload.DX, *payload.DY)
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Keyboard handles POST /api/browser/keyboard - dispatches one key press.
// A missing input focus is a soft failure carried in a 200 response.
func (h *BrowserHandler) Keyboard(c *gin.Context) {
	var payload model.KeyboardPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := payload.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.manager.TypeKey(c.Request.Context(), payload.Key)
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Goto handles POST /api/browser/goto - navigates to a URL.
func (h *BrowserHandler) Goto(c *gin.Context) {
	var payload model.GotoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := payload.Validate(); err != nil {
		sendError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.manager.Goto(c.Request.Context(), payload.URL)
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Back handles POST /api/browser/back - history-guarded back navigation.
func (h *BrowserHandler) Back(c *gin.Context) {
	result, err := h.manager.Back(c.Request.Context())
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Forward handles POST /api/browser/forward - history-guarded forward
// navigation.
func (h *BrowserHandler) Forward(c *gin.Context) {
	result, err := h.manager.Forward(c.Request.Context())
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PDF handles GET /api/page/pdf - renders the current page to PDF.
func (h *BrowserHandler) PDF(c *gin.Context) {
	data, err := h.manager.PDF(c.Request.Context())
	if err != nil {
		sendCommandError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=page.pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

// Content handles GET /api/page/content - returns the page HTML.
func (h *BrowserHandler) Content(c *gin.Context) {
	content, err := h.manager.Content(c.Request.Context())
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"content": content})
}

// Title handles GET /api/page/title - returns the document title.
func (h *BrowserHandler) Title(c *gin.Context) {
	title, err := h.manager.Title(c.Request.Context())
	if err != nil {
		sendCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"title": title})
}

// RegisterRoutes registers the browser command routes on a Gin router group.
func (h *BrowserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	browser := rg.Group("/browser")
	{
		browser.POST("/hover", h.Hover)
		browser.POST("/click", h.Click)
		browser.POST("/scroll", h.Scroll)
		browser.POST("/keyboard", h.Keyboard)
		browser.POST("/goto", h.Goto)
		browser.POST("/back", h.Back)
		browser.POST("/forward", h.Forward)
	}

	page := rg.Group("/page")
	{
		page.GET("/pdf", h.PDF)
		page.GET("/content", h.Content)
		page.GET("/title", h.Title)
	}
}
