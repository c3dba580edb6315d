package handler

import (
	"github.com/gin-gonic/gin"
	socialapp "github.com/novelhub/backend/internal/application/social"
)

// FollowHandler serves the follow/unfollow endpoints
type FollowHandler struct {
	BaseHandler
	follows     *socialapp.FollowService
	requireAuth gin.HandlerFunc
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(follows *socialapp.FollowService, requireAuth gin.HandlerFunc) *FollowHandler {
	return &FollowHandler{
		follows:     follows,
		requireAuth: requireAuth,
	}
}

// Follow handles PUT /novels/:id/follow. Following twice is a no-op.
func (h *FollowHandler) Follow(c *gin.Context) {
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

	if err := h.follows.Follow(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Unfollow handles DELETE /novels/:id/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
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

	if err := h.follows.Unfollow(c.Request.Context(), userID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// RegisterRoutes registers follow routes
func (h *FollowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/novels/:id/follow", h.requireAuth, h.Follow)
	rg.DELETE("/novels/:id/follow", h.requireAuth, h.Unfollow)
}
