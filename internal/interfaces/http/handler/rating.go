package handler

import (
	"github.com/gin-gonic/gin"
	socialapp "github.com/novelhub/backend/internal/application/social"
)

// RatingHandler serves the rating submission endpoint
type RatingHandler struct {
	BaseHandler
	ratings     *socialapp.RatingService
	requireAuth gin.HandlerFunc
}

// NewRatingHandler creates a new RatingHandler
func NewRatingHandler(ratings *socialapp.RatingService, requireAuth gin.HandlerFunc) *RatingHandler {
	return &RatingHandler{
		ratings:     ratings,
		requireAuth: requireAuth,
	}
}

// RateRequest is the body for rating submission
type RateRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}

// RateResponse represents the stored rating
type RateResponse struct {
	ProductID string `json:"product_id"`
	Score     int    `json:"score"`
}

// Rate handles PUT /novels/:id/rating. Repeat submissions replace the
// caller's previous score.
func (h *RatingHandler) Rate(c *gin.Context) {
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

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Score must be between 1 and 5")
		return
	}

	rating, err := h.ratings.Rate(c.Request.Context(), productID, userID, req.Score)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RateResponse{
		ProductID: rating.ProductID.String(),
		Score:     rating.Score,
	})
}

// RegisterRoutes registers rating routes
func (h *RatingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.PUT("/novels/:id/rating", h.requireAuth, h.Rate)
}
