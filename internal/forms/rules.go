package forms

import (
	"regexp"
	"strings"
)

// Field names shared by the login and signup forms.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginForm holds the raw field values of the login form.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupForm holds the raw field values of the signup form.
type SignupForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ValidateLogin returns a field -> message map for every failing field.
// An empty map means the form is valid. The function is pure: it never
// mutates the form and has no side effects.
func ValidateLogin(form LoginForm) map[string]string {
	errs := make(map[string]string)
	validateEmail(errs, form.Email)
	validatePassword(errs, form.Password)
	return errs
}

// ValidateSignup returns a field -> message map for every failing field.
func ValidateSignup(form SignupForm) map[string]string {
	errs := make(map[string]string)

	name := trim(form.Name)
	if name == "" {
		errs[FieldName] = "Name is required"
	} else if len([]rune(name)) < 2 {
		errs[FieldName] = "Name must be at least 2 characters"
	}

	validateEmail(errs, form.Email)
	validatePassword(errs, form.Password)

	if trim(form.ConfirmPassword) == "" {
		errs[FieldConfirmPassword] = "Please confirm your password"
	} else if form.Password != form.ConfirmPassword {
		// Exact, case-sensitive comparison; no normalization.
		errs[FieldConfirmPassword] = "Passwords do not match"
	}

	return errs
}

func validateEmail(errs map[string]string, email string) {
	if trim(email) == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailPattern.MatchString(email) {
		errs[FieldEmail] = "Please enter a valid email address"
	}
}

func validatePassword(errs map[string]string, password string) {
	if trim(password) == "" {
		errs[FieldPassword] = "Password is required"
	} else if len(password) < 6 {
		errs[FieldPassword] = "Password must be at least 6 characters"
	}
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
