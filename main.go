// main.go
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"miorai-web/controllers"
	"miorai-web/logger"
	"miorai-web/middleware"
)

func main() {
	// Local development keeps its settings in a .env file; production uses
	// real environment variables.
	if err := godotenv.Load(); err != nil {
		logger.Info.Println("main: no .env file found, using process environment")
	}

	gin.SetMode(gin.ReleaseMode)

	cfg := loadConfig()
	logger.SetLogLevel(cfg.Environment)
	logger.Info.Printf("main: backend at %s, serving as %s", cfg.APIBaseURL, cfg.ApplicationURL)

	// Keep an eye on the backend so /health can report it.
	monitor := NewBackendMonitor(cfg.APIBaseURL)
	monitor.Start(30 * time.Second)

	router := setupRouter(cfg, monitor)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

// loadConfig reads the environment with localhost defaults for local testing.
func loadConfig() controllers.Config {
	apiBase := os.Getenv("API_BASE_URL")
	if apiBase == "" {
		apiBase = "http://localhost:8000"
	}
	appURL := os.Getenv("APPLICATION_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}
	return controllers.Config{
		ApplicationURL: appURL,
		APIBaseURL:     apiBase,
		Environment:    os.Getenv("APP_ENV"),
	}
}

// setupRouter wires sessions, templates, and every route onto a fresh engine.
func setupRouter(cfg controllers.Config, monitor controllers.BackendStatus) *gin.Engine {
	router := gin.Default()
	app := controllers.NewApp(cfg)

	// Initialize session store
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "dev-session-secret"
		logger.Warn.Println("setupRouter: SESSION_SECRET not set, using the development default")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   false, // Set to true behind TLS
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions("miorai_session", store))

	// Load HTML templates and static assets
	router.LoadHTMLGlob("templates/*.html")
	router.Static("/static", "./static")

	router.GET("/health", app.Health(monitor))

	// Public routes
	router.GET("/", app.Home)
	router.GET("/about", app.About)
	router.GET("/contact", app.Contact)
	router.GET("/login", app.ShowLoginPage)
	router.POST("/login", app.PerformLogin)
	router.GET("/register", app.ShowRegisterPage)
	router.POST("/register", app.PerformRegister)
	router.GET("/logout", app.Logout)
	router.GET("/verify-email", app.VerifyEmail)
	router.GET("/forgot-password", app.ShowForgotPasswordPage)
	router.POST("/forgot-password", app.PerformForgotPassword)
	router.GET("/reset-password", app.ShowResetPasswordPage)
	router.POST("/reset-password", app.PerformResetPassword)
	router.POST("/theme", app.SetTheme)

	// Protected routes
	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/dashboard", app.Dashboard)
		protected.GET("/change-password", app.ShowChangePasswordPage)
		protected.POST("/change-password", app.PerformChangePassword)
		protected.GET("/tournament", app.ShowTournament)
		protected.POST("/tournament/rename", app.RenameTournament)
		protected.POST("/tournament/category", app.ChangeCategory)
		protected.POST("/tournament/images", app.UploadImage)
		protected.POST("/tournament/images/:id/delete", app.DeleteImage)
		protected.POST("/tournament/images/:id/rename", app.RenameImage)
		protected.POST("/tournament/start", app.StartTournament)
		protected.POST("/tournament/matches/:id/result", app.SubmitResult)
		protected.POST("/tournament/publish", app.PublishTournament)
		protected.POST("/tournament/restart", app.RestartTournament)
		protected.POST("/tournament/discard", app.DiscardTournament)
		protected.GET("/public", app.ShowPublicTournaments)
		protected.POST("/public/:id/play", app.PlayPublicTournament)
		protected.GET("/public/:id/qrcode", app.PublicQRCode)
	}

	return router
}
