package forms

import "testing"

func TestValidateSignupRequiredFields(t *testing.T) {
	errs := ValidateSignup(SignupForm{})
	for _, field := range []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword} {
		if errs[field] == "" {
			t.Fatalf("expected error for empty %s", field)
		}
	}
}

func TestValidateSignupAcceptsValidForm(t *testing.T) {
	errs := ValidateSignup(SignupForm{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
	})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateSignupNameTooShort(t *testing.T) {
	errs := ValidateSignup(SignupForm{Name: " J ", Email: "j@example.com", Password: "secret1", ConfirmPassword: "secret1"})
	if errs[FieldName] != "Name must be at least 2 characters" {
		t.Fatalf("expected short-name error, got %q", errs[FieldName])
	}
}

func TestValidateEmailFormat(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co", true},
		{"jane@example", false},
		{"@example.com", false},
		{"jane@.c", false},
		{"plainaddress", false},
	}
	for _, tc := range cases {
		errs := ValidateLogin(LoginForm{Email: tc.email, Password: "secret1"})
		if tc.valid && errs[FieldEmail] != "" {
			t.Fatalf("expected %q valid, got %q", tc.email, errs[FieldEmail])
		}
		if !tc.valid && errs[FieldEmail] == "" {
			t.Fatalf("expected %q invalid", tc.email)
		}
	}
}

func TestValidatePasswordLength(t *testing.T) {
	errs := ValidateLogin(LoginForm{Email: "jane@example.com", Password: "12345"})
	if errs[FieldPassword] != "Password must be at least 6 characters" {
		t.Fatalf("expected short-password error, got %q", errs[FieldPassword])
	}
}

func TestConfirmPasswordMatch(t *testing.T) {
	base := SignupForm{Name: "Jane", Email: "jane@example.com"}

	same := base
	same.Password = "abcdef"
	same.ConfirmPassword = "abcdef"
	if errs := ValidateSignup(same); errs[FieldConfirmPassword] != "" {
		t.Fatalf("matching passwords should not error, got %q", errs[FieldConfirmPassword])
	}

	diff := base
	diff.Password = "abcdef"
	diff.ConfirmPassword = "Abcdef"
	if errs := ValidateSignup(diff); errs[FieldConfirmPassword] != "Passwords do not match" {
		t.Fatalf("case-different passwords must mismatch, got %q", errs[FieldConfirmPassword])
	}
}

func TestValidationIsPure(t *testing.T) {
	form := SignupForm{Name: "Jane", Email: "bad", Password: "short", ConfirmPassword: ""}
	first := ValidateSignup(form)
	second := ValidateSignup(form)
	if len(first) != len(second) {
		t.Fatalf("repeated validation diverged: %v vs %v", first, second)
	}
	for k, v := range first {
		if second[k] != v {
			t.Fatalf("field %s diverged: %q vs %q", k, v, second[k])
		}
	}
}
