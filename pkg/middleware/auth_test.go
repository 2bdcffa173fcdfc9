package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"newsboard/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func echoPrincipal(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user_id":  c.GetString(ContextUserID),
		"username": c.GetString(ContextUsername),
	})
}

func serve(router *gin.Engine, header string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-123", "alice")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", echoPrincipal)

	w := serve(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"user-123"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	refresh, _ := jwtService.GenerateRefreshToken("user-123", "alice")

	router := setupTestRouter()
	router.Use(AuthMiddleware(jwtService))
	router.GET("/test", echoPrincipal)

	for name, header := range map[string]string{
		"no header":      "",
		"invalid format": "InvalidFormat token",
		"empty bearer":   "Bearer ",
		"invalid token":  "Bearer invalid-token",
		"refresh token":  "Bearer " + refresh,
	} {
		t.Run(name, func(t *testing.T) {
			w := serve(router, header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")

	router := setupTestRouter()
	router.Use(OptionalAuth(jwtService))
	router.GET("/test", echoPrincipal)

	w := serve(router, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":""`)
}

func TestOptionalAuth_ValidAndInvalidToken(t *testing.T) {
	jwtService := jwt.NewService("test-secret-key")
	token, _ := jwtService.GenerateToken("user-9", "bob")

	router := setupTestRouter()
	router.Use(OptionalAuth(jwtService))
	router.GET("/test", echoPrincipal)

	w := serve(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"bob"`)

	w = serve(router, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
