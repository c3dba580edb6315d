package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/infrastructure/auth"
	"github.com/novelhub/backend/internal/interfaces/http/dto"
)

// UserIDKey is the context key under which the authenticated user ID is stored
const UserIDKey = "auth_user_id"

// TokenValidator validates a bearer token and returns the subject user ID
type TokenValidator interface {
	Validate(token string) (uuid.UUID, error)
}

// Ensure the JWT service satisfies TokenValidator
var _ TokenValidator = (*auth.JWTService)(nil)

// bearerToken extracts the token from the Authorization header
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// OptionalAuth resolves the caller from a bearer token when one is
// present. Requests without a token, or with one that fails
// validation, proceed as anonymous.
func OptionalAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, err := validator.Validate(token); err == nil {
				c.Set(UserIDKey, userID)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects requests that do not carry a valid bearer token
func RequireAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		userID, err := validator.Validate(token)
		if err != nil {
			code := dto.ErrCodeTokenInvalid
			if err == auth.ErrExpiredToken {
				code = dto.ErrCodeTokenExpired
			}
			abortUnauthorized(c, code, "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID := c.GetString(RequestIDKey)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// GetUserID returns the authenticated user's ID, or nil for anonymous callers
func GetUserID(c *gin.Context) *uuid.UUID {
	value, ok := c.Get(UserIDKey)
	if !ok {
		return nil
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}
	return &userID
}
