package handler

import (
	"github.com/gin-gonic/gin"
	socialapp "github.com/novelhub/backend/internal/application/social"
	"github.com/novelhub/backend/internal/domain/social"
)

// CommentHandler serves comment submission endpoints
type CommentHandler struct {
	BaseHandler
	comments    *socialapp.CommentService
	requireAuth gin.HandlerFunc
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(comments *socialapp.CommentService, requireAuth gin.HandlerFunc) *CommentHandler {
	return &CommentHandler{
		comments:    comments,
		requireAuth: requireAuth,
	}
}

// AddCommentRequest is the body for comment and reply submission
type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=1000"`
}

// CommentResponse represents a created comment
type CommentResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id,omitempty"`
	ChapterID string `json:"chapter_id,omitempty"`
	ParentID  string `json:"parent_id,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func toCommentResponse(comment *social.Comment) CommentResponse {
	resp := CommentResponse{
		ID:        comment.ID.String(),
		ProductID: comment.ProductID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if comment.ParentID != nil {
		resp.ParentID = comment.ParentID.String()
	}
	return resp
}

// AddComment handles POST /novels/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	productID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid novel ID")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.comments.AddComment(c.Request.Context(), productID, userID, req.Content)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCommentResponse(comment))
}

// Reply handles POST /comments/:id/replies
func (h *CommentHandler) Reply(c *gin.Context) {
	parentID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid comment ID")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	reply, err := h.comments.Reply(c.Request.Context(), parentID, userID, req.Content)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCommentResponse(reply))
}

// AddChapterComment handles POST /chapters/:id/comments
func (h *CommentHandler) AddChapterComment(c *gin.Context) {
	chapterID, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid chapter ID")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	comment, err := h.comments.AddChapterComment(c.Request.Context(), chapterID, userID, req.Content)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, CommentResponse{
		ID:        comment.ID.String(),
		ChapterID: comment.ChapterID.String(),
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// RegisterRoutes registers comment routes
func (h *CommentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/novels/:id/comments", h.requireAuth, h.AddComment)
	rg.POST("/comments/:id/replies", h.requireAuth, h.Reply)
	rg.POST("/chapters/:id/comments", h.requireAuth, h.AddChapterComment)
}
