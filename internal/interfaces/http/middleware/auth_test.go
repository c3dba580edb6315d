package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novelhub/backend/internal/domain/identity"
	"github.com/novelhub/backend/internal/infrastructure/auth"
	"github.com/novelhub/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func issueToken(t *testing.T, service *auth.JWTService) (string, uuid.UUID) {
	t.Helper()

	user, err := identity.NewUser("reader", "reader@example.com", "hash")
	require.NoError(t, err)

	token, _, err := service.Issue(user)
	require.NoError(t, err)
	return token, user.ID
}

// echoUserID exposes the resolved caller so tests can inspect it
func echoUserID(c *gin.Context) {
	if userID := GetUserID(c); userID != nil {
		c.String(http.StatusOK, userID.String())
		return
	}
	c.String(http.StatusOK, "anonymous")
}

func TestOptionalAuth(t *testing.T) {
	service := auth.NewJWTService("test-secret", "novelhub", time.Hour)

	router := gin.New()
	router.Use(OptionalAuth(service))
	router.GET("/test", echoUserID)

	t.Run("resolves the caller from a valid token", func(t *testing.T) {
		token, userID := issueToken(t, service)

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("missing token proceeds as anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})

	t.Run("invalid token proceeds as anonymous", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", w.Body.String())
	})
}

func TestRequireAuth(t *testing.T) {
	service := auth.NewJWTService("test-secret", "novelhub", time.Hour)

	router := gin.New()
	router.GET("/test", RequireAuth(service), echoUserID)

	decodeError := func(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorInfo {
		t.Helper()
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		return resp.Error
	}

	t.Run("allows valid token", func(t *testing.T) {
		token, userID := issueToken(t, service)

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("rejects missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeUnauthorized, decodeError(t, w).Code)
	})

	t.Run("rejects malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects invalid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeTokenInvalid, decodeError(t, w).Code)
	})

	t.Run("reports expired token distinctly", func(t *testing.T) {
		expired := auth.NewJWTService("test-secret", "novelhub", -time.Minute)
		token, _ := issueToken(t, expired)

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeTokenExpired, decodeError(t, w).Code)
	})
}

func TestGetUserIDWithoutAuth(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	assert.Nil(t, GetUserID(c))
}
