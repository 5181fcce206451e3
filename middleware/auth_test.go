// File: middleware/auth_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"miorai-web/middleware"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))
	return router
}

func TestAuthRequiredRedirectsWithoutToken(t *testing.T) {
	router := newRouter()
	router.GET("/protected", middleware.AuthRequired, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthRequiredAllowsTokenBearingSession(t *testing.T) {
	router := newRouter()
	router.GET("/seed", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("token", "backend-token")
		_ = session.Save()
		c.String(http.StatusOK, "seeded")
	})
	router.GET("/protected", middleware.AuthRequired, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	seed := httptest.NewRecorder()
	router.ServeHTTP(seed, httptest.NewRequest(http.MethodGet, "/seed", nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	for _, c := range seed.Result().Cookies() {
		req.AddCookie(c)
	}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
