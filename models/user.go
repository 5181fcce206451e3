// Package models defines data structures used across the application.
// File: models/user.go
package models

// ----------------------- user model -----------------------

// User is the signed-in account as reported by the auth service.
type User struct {
	ID            int    `json:"id"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	EmailVerified bool   `json:"email_verified"`
	CreatedAt     string `json:"created_at"`
	LastLogin     string `json:"last_login"`
}

// DisplayName is the name shown in the navbar, falling back to the email
// address when the account has no name set.
func (u User) DisplayName() string {
	name := u.FirstName
	if u.LastName != "" {
		if name != "" {
			name += " "
		}
		name += u.LastName
	}
	if name == "" {
		return u.Email
	}
	return name
}

// ------------------- credential payloads -------------------

// LoginData carries the login form fields.
type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData carries the registration form fields. The backend expects the
// confirmation under password2.
type RegisterData struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"password2"`
}
