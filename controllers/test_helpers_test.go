// File: controllers/test_helpers_test.go
package controllers

import (
	"html/template"
	"net/http"
	"net/http/httptest"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"miorai-web/middleware"
)

// newTestRouter builds a router around an App pointed at the given fake
// backend, with stub templates so handlers can render without the real
// templates directory.
func newTestRouter(backendURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	tmpl := template.New("root")
	pages := map[string]string{
		"login.html":              `login{{if .Error}} error={{.Error}}{{end}}{{if .FieldErrors}} fielderrors{{end}}`,
		"register.html":           `register{{if .Error}} error={{.Error}}{{end}}{{if .FieldErrors}} fielderrors{{end}}`,
		"verify_email.html":       `verify{{if .Verified}} verified{{end}}{{if .Error}} error={{.Error}}{{end}}`,
		"forgot_password.html":    `forgot{{if .Sent}} sent{{end}}{{if .Error}} error={{.Error}}{{end}}`,
		"reset_password.html":     `reset{{if .Error}} error={{.Error}}{{end}}`,
		"dashboard.html":          `dashboard{{if .User}} user={{.User.Email}}{{end}}{{if .Error}} error={{.Error}}{{end}}`,
		"change_password.html":    `changepassword{{if .Changed}} changed{{end}}{{if .Error}} error={{.Error}}{{end}}`,
		"tournament.html":         `{{if .LoadError}}loaderror={{.LoadError}}{{else}}step={{.StepName}} images={{.ImageCount}}{{if .Error}} error={{.Error}}{{end}}{{if .Prediction}} prediction={{.Prediction}}{{end}}{{end}}`,
		"public_tournaments.html": `public{{if .Error}} error={{.Error}}{{end}}{{range .Tournaments}} t={{.Name}}{{end}}`,
		"home.html":               `home`,
		"about.html":              `about`,
		"contact.html":            `contact`,
	}
	for name, body := range pages {
		template.Must(tmpl.New(name).Parse(body))
	}
	router.SetHTMLTemplate(tmpl)

	app := NewApp(Config{
		ApplicationURL: "http://localhost:8080",
		APIBaseURL:     backendURL,
	})

	router.GET("/login", app.ShowLoginPage)
	router.POST("/login", app.PerformLogin)
	router.GET("/register", app.ShowRegisterPage)
	router.POST("/register", app.PerformRegister)
	router.GET("/logout", app.Logout)
	router.GET("/verify-email", app.VerifyEmail)
	router.GET("/forgot-password", app.ShowForgotPasswordPage)
	router.POST("/forgot-password", app.PerformForgotPassword)
	router.POST("/theme", app.SetTheme)

	protected := router.Group("/", middleware.AuthRequired)
	{
		protected.GET("/dashboard", app.Dashboard)
		protected.GET("/change-password", app.ShowChangePasswordPage)
		protected.POST("/change-password", app.PerformChangePassword)
		protected.GET("/tournament", app.ShowTournament)
		protected.POST("/tournament/start", app.StartTournament)
		protected.POST("/tournament/images", app.UploadImage)
		protected.POST("/tournament/matches/:id/result", app.SubmitResult)
		protected.POST("/tournament/restart", app.RestartTournament)
		protected.GET("/public", app.ShowPublicTournaments)
		protected.POST("/public/:id/play", app.PlayPublicTournament)
		protected.GET("/public/:id/qrcode", app.PublicQRCode)
	}

	// test-only hook to seed a signed-in session
	router.GET("/__seed", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set("token", "test-token")
		session.Set("userEmail", "ada@example.com")
		_ = session.Save()
		c.Status(200)
	})

	return router
}

// signIn seeds a token-bearing session and returns its cookies for use on
// later requests.
func signIn(router *gin.Engine) []*http.Cookie {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/__seed", nil)
	router.ServeHTTP(w, req)
	return w.Result().Cookies()
}

// serve runs a request with optional session cookies and returns the recorder.
func serve(router *gin.Engine, req *http.Request, cookies []*http.Cookie) *httptest.ResponseRecorder {
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
