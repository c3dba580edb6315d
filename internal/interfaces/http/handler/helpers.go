package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/interfaces/http/middleware"
)

// viewerID returns the authenticated caller's ID, nil for anonymous
func viewerID(c *gin.Context) *uuid.UUID {
	return middleware.GetUserID(c)
}

// requireUserID returns the authenticated caller's ID. Routes behind
// RequireAuth always have one; the bool guards against miswiring.
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	id := middleware.GetUserID(c)
	if id == nil {
		return uuid.Nil, false
	}
	return *id, true
}
