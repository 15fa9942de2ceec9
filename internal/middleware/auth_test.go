package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin/ping",
		AuthMiddleware(cfg),
		RoleAuthMiddleware(models.RoleAdmin),
		func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return router
}

func testCfg() *config.Config {
	return &config.Config{
		JWTSecret:                 "access-secret",
		JWTRefreshSecret:          "refresh-secret",
		JWTExpirationMinutes:      15,
		JWTRefreshExpirationHours: 1,
	}
}

func tokenFor(t *testing.T, cfg *config.Config, role models.Role) string {
	t.Helper()
	user := &models.User{Role: role}
	user.ID = "u1"
	access, _, err := utils.GenerateTokens(user, cfg)
	require.NoError(t, err)
	return access
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := adminRouter(testCfg())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/ping", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := adminRouter(testCfg())

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRoleAuthMiddlewareRejectsNonAdmin(t *testing.T) {
	cfg := testCfg()
	router := adminRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, models.RoleUser))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAdminPassesThrough(t *testing.T) {
	cfg := testCfg()
	router := adminRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, cfg, models.RoleAdmin))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}
