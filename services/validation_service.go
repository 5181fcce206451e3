// File: services/validation_service.go
package services

import (
	"regexp"
	"strings"
	"unicode"
)

// Form validation runs locally before any credential request is sent, so the
// user gets field-level feedback without a network round trip. Rules mirror
// what the auth service enforces.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = "!@#$%^&*"

// ValidationErrors maps a form field to its first failing rule.
type ValidationErrors map[string]string

// ValidateEmail checks basic address shape. Returns an empty string when valid.
func ValidateEmail(email string) string {
	if email == "" {
		return "Email address is required."
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address."
	}
	return ""
}

// ValidatePassword enforces the registration password rules: at least 8
// characters with an upper-case letter, a lower-case letter, a digit, and
// one of !@#$%^&*.
func ValidatePassword(password string) string {
	if password == "" {
		return "Password is required."
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters."
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	switch {
	case !hasUpper:
		return "Password must contain an upper-case letter."
	case !hasLower:
		return "Password must contain a lower-case letter."
	case !hasDigit:
		return "Password must contain a digit."
	case !hasSpecial:
		return "Password must contain a special character (!@#$%^&*)."
	}
	return ""
}

// ValidateName checks a first or last name: letters and spaces only, at
// least two characters.
func ValidateName(name string) string {
	if name == "" {
		return "Name is required."
	}
	if len([]rune(name)) < 2 {
		return "Name must be at least 2 characters."
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return "Name may only contain letters."
		}
	}
	return ""
}

// ValidatePasswordMatch checks the confirmation field.
func ValidatePasswordMatch(password, confirm string) string {
	if confirm == "" {
		return "Password confirmation is required."
	}
	if password != confirm {
		return "Passwords do not match."
	}
	return ""
}

// ValidateRegisterForm checks every registration field and returns a
// field-keyed error map; an empty map means the form may be submitted.
func ValidateRegisterForm(firstName, lastName, email, password, confirm string) ValidationErrors {
	errs := ValidationErrors{}
	if msg := ValidateName(firstName); msg != "" {
		errs["firstName"] = msg
	}
	if msg := ValidateName(lastName); msg != "" {
		errs["lastName"] = msg
	}
	if msg := ValidateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if msg := ValidatePassword(password); msg != "" {
		errs["password"] = msg
	}
	if msg := ValidatePasswordMatch(password, confirm); msg != "" {
		errs["confirmPassword"] = msg
	}
	return errs
}

// ValidateLoginForm checks the login fields.
func ValidateLoginForm(email, password string) ValidationErrors {
	errs := ValidationErrors{}
	if msg := ValidateEmail(email); msg != "" {
		errs["email"] = msg
	}
	if password == "" {
		errs["password"] = "Password is required."
	}
	return errs
}
