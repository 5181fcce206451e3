// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"miorai-web/api"
	"miorai-web/logger"
	"miorai-web/models"
	"miorai-web/services"
)

// ------------------ login ------------------

// ShowLoginPage renders the login form.
func (a *App) ShowLoginPage(c *gin.Context) {
	data := a.baseData(c)
	data["Error"] = takeFlash(c)
	c.HTML(http.StatusOK, "login.html", data)
}

// PerformLogin validates the form locally, exchanges the credentials for a
// backend token, stores it in the session, and moves on to the dashboard.
func (a *App) PerformLogin(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if errs := services.ValidateLoginForm(email, password); len(errs) > 0 {
		data := a.baseData(c)
		data["FieldErrors"] = errs
		data["Email"] = email
		c.HTML(http.StatusBadRequest, "login.html", data)
		return
	}

	session, err := a.client(c).Login(c.Request.Context(), models.LoginData{Email: email, Password: password})
	if err != nil {
		logger.Warn.Printf("PerformLogin: login failed for %s: %v", email, err)
		data := a.baseData(c)
		data["Error"] = api.Message(err, "Unable to sign in right now, please try again.")
		data["Email"] = email
		c.HTML(http.StatusUnauthorized, "login.html", data)
		return
	}

	a.storeSession(c, session)
	logger.Info.Printf("PerformLogin: %s signed in", email)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ------------------ registration ------------------

// ShowRegisterPage renders the registration form.
func (a *App) ShowRegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", a.baseData(c))
}

// PerformRegister validates every field locally first, then creates the
// account and signs the new user in. Registration continues to the email
// verification notice.
func (a *App) PerformRegister(c *gin.Context) {
	firstName := c.PostForm("first_name")
	lastName := c.PostForm("last_name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	confirm := c.PostForm("confirm_password")

	if errs := services.ValidateRegisterForm(firstName, lastName, email, password, confirm); len(errs) > 0 {
		data := a.baseData(c)
		data["FieldErrors"] = errs
		data["FirstName"] = firstName
		data["LastName"] = lastName
		data["Email"] = email
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	session, err := a.client(c).Register(c.Request.Context(), models.RegisterData{
		FirstName:       firstName,
		LastName:        lastName,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		logger.Warn.Printf("PerformRegister: registration failed for %s: %v", email, err)
		data := a.baseData(c)
		data["Error"] = api.Message(err, "Unable to register right now, please try again.")
		data["FirstName"] = firstName
		data["LastName"] = lastName
		data["Email"] = email
		c.HTML(http.StatusBadRequest, "register.html", data)
		return
	}

	a.storeSession(c, session)
	logger.Info.Printf("PerformRegister: account created for %s", email)
	c.Redirect(http.StatusFound, "/verify-email")
}

func (a *App) storeSession(c *gin.Context, backendSession *api.Session) {
	session := sessions.Default(c)
	session.Set("token", backendSession.Token)
	session.Set("userEmail", backendSession.User.Email)
	session.Set("userName", backendSession.User.DisplayName())
	if err := session.Save(); err != nil {
		logger.Error.Printf("storeSession: saving session: %v", err)
	}
}

// ------------------ logout ------------------

// Logout invalidates the token server-side on a best-effort basis, then
// clears the local session no matter what. Signing out locally must never
// be blocked by a network failure.
func (a *App) Logout(c *gin.Context) {
	if err := a.client(c).Logout(c.Request.Context()); err != nil {
		logger.Warn.Printf("Logout: backend logout failed, clearing session anyway: %v", err)
	}

	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: saving cleared session: %v", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

// ------------------ email verification ------------------

// VerifyEmail either redeems the token from the emailed link or, without
// one, shows the check-your-inbox notice after registration.
func (a *App) VerifyEmail(c *gin.Context) {
	data := a.baseData(c)
	token := c.Query("token")
	if token == "" {
		c.HTML(http.StatusOK, "verify_email.html", data)
		return
	}

	if err := a.client(c).VerifyEmail(c.Request.Context(), token); err != nil {
		logger.Warn.Printf("VerifyEmail: verification failed: %v", err)
		data["Error"] = api.Message(err, "The verification link is invalid or has expired.")
		c.HTML(http.StatusBadRequest, "verify_email.html", data)
		return
	}
	data["Verified"] = true
	c.HTML(http.StatusOK, "verify_email.html", data)
}

// ------------------ password reset ------------------

// ShowForgotPasswordPage renders the reset request form.
func (a *App) ShowForgotPasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "forgot_password.html", a.baseData(c))
}

// PerformForgotPassword asks the backend to mail a reset link.
func (a *App) PerformForgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	data := a.baseData(c)
	if msg := services.ValidateEmail(email); msg != "" {
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "forgot_password.html", data)
		return
	}

	if err := a.client(c).RequestPasswordReset(c.Request.Context(), email); err != nil {
		logger.Warn.Printf("PerformForgotPassword: request failed for %s: %v", email, err)
		data["Error"] = api.Message(err, "Unable to send the reset email right now.")
		c.HTML(http.StatusBadGateway, "forgot_password.html", data)
		return
	}
	data["Sent"] = true
	c.HTML(http.StatusOK, "forgot_password.html", data)
}

// ShowResetPasswordPage renders the new-password form behind an emailed link.
func (a *App) ShowResetPasswordPage(c *gin.Context) {
	data := a.baseData(c)
	data["Token"] = c.Query("token")
	c.HTML(http.StatusOK, "reset_password.html", data)
}

// PerformResetPassword redeems the reset token with the new password.
func (a *App) PerformResetPassword(c *gin.Context) {
	token := c.PostForm("token")
	password := c.PostForm("new_password")
	confirm := c.PostForm("confirm_password")

	data := a.baseData(c)
	data["Token"] = token
	if msg := services.ValidatePassword(password); msg != "" {
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "reset_password.html", data)
		return
	}
	if msg := services.ValidatePasswordMatch(password, confirm); msg != "" {
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "reset_password.html", data)
		return
	}

	if err := a.client(c).ConfirmPasswordReset(c.Request.Context(), token, password, confirm); err != nil {
		logger.Warn.Printf("PerformResetPassword: confirm failed: %v", err)
		data["Error"] = api.Message(err, "The reset link is invalid or has expired.")
		c.HTML(http.StatusBadRequest, "reset_password.html", data)
		return
	}

	setFlash(c, "Your password has been reset, you can sign in now.")
	c.Redirect(http.StatusFound, "/login")
}

// ShowChangePasswordPage renders the signed-in password change form.
func (a *App) ShowChangePasswordPage(c *gin.Context) {
	c.HTML(http.StatusOK, "change_password.html", a.baseData(c))
}

// PerformChangePassword swaps the signed-in user's password.
func (a *App) PerformChangePassword(c *gin.Context) {
	oldPassword := c.PostForm("old_password")
	newPassword := c.PostForm("new_password")
	confirm := c.PostForm("confirm_password")

	data := a.baseData(c)
	if oldPassword == "" {
		data["Error"] = "Current password is required."
		c.HTML(http.StatusBadRequest, "change_password.html", data)
		return
	}
	if msg := services.ValidatePassword(newPassword); msg != "" {
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "change_password.html", data)
		return
	}
	if msg := services.ValidatePasswordMatch(newPassword, confirm); msg != "" {
		data["Error"] = msg
		c.HTML(http.StatusBadRequest, "change_password.html", data)
		return
	}

	if err := a.client(c).ChangePassword(c.Request.Context(), oldPassword, newPassword); err != nil {
		if api.IsUnauthorized(err) {
			a.forceLogout(c)
			return
		}
		logger.Warn.Printf("PerformChangePassword: change failed: %v", err)
		data["Error"] = api.Message(err, "The password could not be changed.")
		c.HTML(http.StatusBadRequest, "change_password.html", data)
		return
	}
	data["Changed"] = true
	c.HTML(http.StatusOK, "change_password.html", data)
}

// ------------------ dashboard ------------------

// Dashboard shows the signed-in account as the auth service reports it.
func (a *App) Dashboard(c *gin.Context) {
	user, err := a.client(c).CurrentUser(c.Request.Context())
	if err != nil {
		if api.IsUnauthorized(err) {
			a.forceLogout(c)
			return
		}
		logger.Error.Printf("Dashboard: fetching current user: %v", err)
		data := a.baseData(c)
		data["Error"] = api.Message(err, "Unable to load your account right now.")
		c.HTML(http.StatusBadGateway, "dashboard.html", data)
		return
	}

	data := a.baseData(c)
	data["User"] = user
	c.HTML(http.StatusOK, "dashboard.html", data)
}
