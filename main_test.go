// main_test.go
package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miorai-web/controllers"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("APPLICATION_URL", "")
	t.Setenv("APP_ENV", "")

	cfg := loadConfig()
	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, "http://localhost:8080", cfg.ApplicationURL)
	assert.Empty(t, cfg.Environment)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.miorai.app")
	t.Setenv("APPLICATION_URL", "https://miorai.app")
	t.Setenv("APP_ENV", "production")

	cfg := loadConfig()
	assert.Equal(t, "https://api.miorai.app", cfg.APIBaseURL)
	assert.Equal(t, "https://miorai.app", cfg.ApplicationURL)
	assert.Equal(t, "production", cfg.Environment)
}

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(controllers.Config{APIBaseURL: "http://localhost:8000"}, nil)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","backend":"ok"}`, w.Body.String())
}

func TestHealthReportsUnreachableBackend(t *testing.T) {
	gin.SetMode(gin.TestMode)
	monitor := NewBackendMonitor("http://127.0.0.1:1") // nothing listens here
	monitor.Probe()
	router := setupRouter(controllers.Config{APIBaseURL: "http://localhost:8000"}, monitor)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","backend":"unreachable"}`, w.Body.String())
}

func TestProtectedRoutesRedirectAnonymousVisitors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := setupRouter(controllers.Config{APIBaseURL: "http://localhost:8000"}, nil)

	for _, path := range []string{"/dashboard", "/tournament", "/public"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestBackendMonitorProbe(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health/", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer backend.Close()

	monitor := NewBackendMonitor(backend.URL)
	assert.False(t, monitor.Reachable(), "untested backend starts as unreachable")

	monitor.Probe()
	assert.True(t, monitor.Reachable())
	assert.False(t, monitor.LastSuccess().IsZero())
}

func TestBackendMonitorMarksFailures(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()

	monitor := NewBackendMonitor(backend.URL)
	monitor.Probe()
	assert.False(t, monitor.Reachable())
	assert.True(t, monitor.LastSuccess().IsZero())
}
