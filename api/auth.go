// File: api/auth.go
package api

import (
	"context"
	"net/http"
	"net/url"

	"miorai-web/models"
)

// Session is what a successful login or registration hands back: the token
// to store and the account it belongs to.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login exchanges credentials for a backend token.
func (c *Client) Login(ctx context.Context, data models.LoginData) (*Session, error) {
	var session Session
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login/", data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Register creates an account and, like Login, returns a live session.
func (c *Client) Register(ctx context.Context, data models.RegisterData) (*Session, error) {
	var session Session
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register/", data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout invalidates the token server-side. Callers must clear their local
// session regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/auth/logout/", nil, nil)
}

// CurrentUser fetches the account behind the client's token.
func (c *Client) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/user/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyEmail redeems an email verification token.
func (c *Client) VerifyEmail(ctx context.Context, token string) error {
	path := "/api/auth/verify-email/?token=" + url.QueryEscape(token)
	return c.doJSON(ctx, http.MethodGet, path, nil, nil)
}

// RequestPasswordReset asks the backend to mail a reset link.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password/", body, nil)
}

// ConfirmPasswordReset redeems a reset token with the new password.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, newPassword, confirm string) error {
	body := map[string]string{
		"token":         token,
		"new_password":  newPassword,
		"new_password2": confirm,
	}
	return c.doJSON(ctx, http.MethodPost, "/api/auth/reset-password/confirm/", body, nil)
}

// ChangePassword replaces the signed-in user's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return c.doJSON(ctx, http.MethodPut, "/api/auth/change-password/", body, nil)
}
