// File: services/validation_service_test.go
package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"miorai-web/services"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		valid bool
	}{
		{name: "valid address", email: "user@example.com", valid: true},
		{name: "subdomain", email: "user@mail.example.co", valid: true},
		{name: "empty", email: "", valid: false},
		{name: "missing at", email: "userexample.com", valid: false},
		{name: "missing domain dot", email: "user@example", valid: false},
		{name: "contains space", email: "us er@example.com", valid: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := services.ValidateEmail(tc.email)
			if tc.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{name: "all rules met", password: "Str0ng!pass", valid: true},
		{name: "empty", password: "", valid: false},
		{name: "too short", password: "S1!a", valid: false},
		{name: "no upper case", password: "weak1pass!", valid: false},
		{name: "no lower case", password: "WEAK1PASS!", valid: false},
		{name: "no digit", password: "Weakpass!", valid: false},
		{name: "no special", password: "Weak1pass", valid: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := services.ValidatePassword(tc.password)
			if tc.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	assert.Empty(t, services.ValidateName("Ada"))
	assert.Empty(t, services.ValidateName("Mary Jane"))
	assert.Empty(t, services.ValidateName("Çağla"))
	assert.NotEmpty(t, services.ValidateName(""))
	assert.NotEmpty(t, services.ValidateName("A"))
	assert.NotEmpty(t, services.ValidateName("R2D2"))
}

func TestValidatePasswordMatch(t *testing.T) {
	assert.Empty(t, services.ValidatePasswordMatch("secret", "secret"))
	assert.NotEmpty(t, services.ValidatePasswordMatch("secret", ""))
	assert.NotEmpty(t, services.ValidatePasswordMatch("secret", "other"))
}

func TestValidateRegisterFormCollectsFieldErrors(t *testing.T) {
	errs := services.ValidateRegisterForm("", "Lovelace", "not-an-email", "weak", "different")

	assert.Contains(t, errs, "firstName")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.Contains(t, errs, "confirmPassword")
	assert.NotContains(t, errs, "lastName")
}

func TestValidateRegisterFormAcceptsValidInput(t *testing.T) {
	errs := services.ValidateRegisterForm("Ada", "Lovelace", "ada@example.com", "Str0ng!pass", "Str0ng!pass")
	assert.Empty(t, errs)
}

func TestValidateLoginForm(t *testing.T) {
	errs := services.ValidateLoginForm("", "")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")

	errs = services.ValidateLoginForm("ada@example.com", "pw")
	assert.Empty(t, errs)
}
