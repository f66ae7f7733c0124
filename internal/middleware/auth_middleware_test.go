package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/K227-arch/home-solutions/internal/config"
	"github.com/K227-arch/home-solutions/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiresIn: 3600},
	}
}

func newAuthRouter(cfg *config.Config, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/")
	g.Use(JWTAuthMiddleware(cfg))
	if role != "" {
		g.Use(RequireRole(role))
	}
	g.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":    c.GetString("userID"),
			"userEmail": c.GetString("userEmail"),
			"userRole":  c.GetString("userRole"),
		})
	})
	return r
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	cfg := authTestConfig()
	token, err := utils.GenerateJWT("abc123", "user@example.com", "member", cfg)
	require.NoError(t, err)

	r := newAuthRouter(cfg, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"abc123","userEmail":"user@example.com","userRole":"member"}`, w.Body.String())
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthRouter(authTestConfig(), "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_MalformedToken(t *testing.T) {
	r := newAuthRouter(authTestConfig(), "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	cfg := authTestConfig()
	cfg.JWT.ExpiresIn = -60
	token, err := utils.GenerateJWT("abc123", "user@example.com", "member", cfg)
	require.NoError(t, err)

	r := newAuthRouter(cfg, "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Token has expired"}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	cfg := authTestConfig()
	memberToken, err := utils.GenerateJWT("abc123", "user@example.com", "member", cfg)
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT("def456", "admin@example.com", "admin", cfg)
	require.NoError(t, err)

	r := newAuthRouter(cfg, "admin")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+memberToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
