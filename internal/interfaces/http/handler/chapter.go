package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/novelhub/backend/internal/application/reading"
)

// ChapterHandler serves the chapter reading endpoint
type ChapterHandler struct {
	BaseHandler
	watching *reading.WatchingService
}

// NewChapterHandler creates a new ChapterHandler
func NewChapterHandler(watching *reading.WatchingService) *ChapterHandler {
	return &ChapterHandler{watching: watching}
}

// Read handles GET /chapters/:id/read
func (h *ChapterHandler) Read(c *gin.Context) {
	chapterID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid chapter ID")
		return
	}

	view, err := h.watching.Watch(c.Request.Context(), chapterID, viewerID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// RegisterRoutes registers chapter routes
func (h *ChapterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	chapters := rg.Group("/chapters")
	{
		chapters.GET(":id/read", h.Read)
	}
}
