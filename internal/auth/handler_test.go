package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/users"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(users.NewService(users.NewMemoryRepo())).RegisterRoutes(api)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

type sessionBody struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

func TestRegisterIssuesSession(t *testing.T) {
	r := setupAuthRouter(t)

	resp := postJSON(t, r, "/api/v1/auth/register", map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", resp.Code, resp.Body.String())
	}

	var body sessionBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" {
		t.Fatal("expected session token")
	}
	if body.User.Email != "ada@example.com" || body.User.Name != "Ada" {
		t.Fatalf("user = %+v", body.User)
	}
	if bytes.Contains(resp.Body.Bytes(), []byte("passwordHash")) {
		t.Fatal("response must not expose password hash")
	}
}

func TestRegisterValidationMessages(t *testing.T) {
	r := setupAuthRouter(t)

	resp := postJSON(t, r, "/api/v1/auth/register", map[string]string{
		"name":            "A",
		"email":           "not-an-email",
		"password":        "short",
		"confirmPassword": "",
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", resp.Code, resp.Body.String())
	}

	var errResp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]string{
		"name":            "Name must be at least 2 characters",
		"email":           "Please enter a valid email address",
		"password":        "Password must be at least 6 characters",
		"confirmPassword": "Please confirm your password",
	}
	for field, msg := range want {
		if got := errResp.Error.Details[field]; got != msg {
			t.Errorf("details[%q] = %q, want %q", field, got, msg)
		}
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r := setupAuthRouter(t)

	payload := map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}
	if resp := postJSON(t, r, "/api/v1/auth/register", payload); resp.Code != http.StatusCreated {
		t.Fatalf("first register status = %d", resp.Code)
	}

	resp := postJSON(t, r, "/api/v1/auth/register", payload)
	if resp.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", resp.Code, resp.Body.String())
	}
}

func TestLoginRoundTrip(t *testing.T) {
	r := setupAuthRouter(t)

	if resp := postJSON(t, r, "/api/v1/auth/register", map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}); resp.Code != http.StatusCreated {
		t.Fatalf("register status = %d", resp.Code)
	}

	resp := postJSON(t, r, "/api/v1/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "secret1",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", resp.Code, resp.Body.String())
	}
	var body sessionBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" || body.User.ID == "" {
		t.Fatalf("session incomplete: %+v", body)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupAuthRouter(t)

	if resp := postJSON(t, r, "/api/v1/auth/register", map[string]string{
		"name":            "Ada",
		"email":           "ada@example.com",
		"password":        "secret1",
		"confirmPassword": "secret1",
	}); resp.Code != http.StatusCreated {
		t.Fatalf("register status = %d", resp.Code)
	}

	resp := postJSON(t, r, "/api/v1/auth/login", map[string]string{
		"email":    "ada@example.com",
		"password": "wrong-password",
	})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401: %s", resp.Code, resp.Body.String())
	}
}
