package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-store/config"
	"school-store/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
	os.Exit(m.Run())
}

func protectedRouter() *gin.Engine {
	router := gin.New()
	router.GET("/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":  c.GetInt("user_id"),
			"is_admin": c.GetBool("is_admin"),
		})
	})
	router.GET("/admin", AuthMiddleware(), AdminMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doGet(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := protectedRouter()

	token, err := utils.GenerateToken(7, "priya@example.com", false)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid token", header: "Bearer " + token, want: http.StatusOK},
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic " + token, want: http.StatusUnauthorized},
		{name: "malformed token", header: "Bearer garbage", want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, "/me", tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuthMiddlewareSetsClaims(t *testing.T) {
	router := protectedRouter()

	token, err := utils.GenerateToken(7, "priya@example.com", true)
	require.NoError(t, err)

	w := doGet(router, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id": 7, "is_admin": true}`, w.Body.String())
}

func TestAdminMiddleware(t *testing.T) {
	router := protectedRouter()

	adminToken, err := utils.GenerateToken(1, "admin@example.com", true)
	require.NoError(t, err)
	userToken, err := utils.GenerateToken(7, "priya@example.com", false)
	require.NoError(t, err)

	w := doGet(router, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(router, "/admin", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
