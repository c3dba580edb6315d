package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/application/reading"
	"github.com/novelhub/backend/internal/domain/shared"
)

// NovelHandler serves the catalog browse and product details endpoints
type NovelHandler struct {
	BaseHandler
	browse  *reading.BrowseService
	details *reading.DetailsService
}

// NewNovelHandler creates a new NovelHandler
func NewNovelHandler(browse *reading.BrowseService, details *reading.DetailsService) *NovelHandler {
	return &NovelHandler{
		browse:  browse,
		details: details,
	}
}

// ListNovelsRequest holds the browse/search query parameters
type ListNovelsRequest struct {
	Search     string `form:"search"`
	Categories string `form:"categories"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// List handles GET /novels
func (h *NovelHandler) List(c *gin.Context) {
	var req ListNovelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	categoryIDs, err := parseCategoryIDs(req.Categories)
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return
	}

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	}
	filter.Normalize()

	result, err := h.browse.Search(c.Request.Context(), req.Search, categoryIDs, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, filter.Page, filter.PageSize)
}

// Details handles GET /novels/:id
func (h *NovelHandler) Details(c *gin.Context) {
	productID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid novel ID")
		return
	}

	commentPage := queryInt(c, "comment_page", reading.DefaultCommentPage)
	commentPageSize := queryInt(c, "comment_page_size", reading.DefaultCommentPageSize)

	view, err := h.details.Details(c.Request.Context(), productID, viewerID(c), commentPage, commentPageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}

// Categories handles GET /categories
func (h *NovelHandler) Categories(c *gin.Context) {
	categories, err := h.browse.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// RegisterRoutes registers novel routes
func (h *NovelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	novels := rg.Group("/novels")
	{
		novels.GET("", h.List)
		novels.GET(":id", h.Details)
	}
	rg.GET("/categories", h.Categories)
}

// parseCategoryIDs splits a comma-separated list of category UUIDs
func parseCategoryIDs(raw string) ([]uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		id, err := uuid.Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// queryInt reads an integer query parameter with a fallback
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
