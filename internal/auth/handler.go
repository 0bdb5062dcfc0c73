package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/forms"
	sharedauth "resume-builder-backend/internal/shared/auth"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/users"
)

// Handler exposes password registration and login.
type Handler struct {
	Users *users.Service
}

func NewHandler(userSvc *users.Service) *Handler {
	return &Handler{Users: userSvc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.register)
	rg.POST("/auth/login", h.login)
}

type sessionResponse struct {
	Token string     `json:"token"`
	User  users.User `json:"user"`
}

func (h *Handler) register(c *gin.Context) {
	var form forms.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if fieldErrors := forms.ValidateSignup(form); len(fieldErrors) > 0 {
		respond.ValidationError(c, fieldErrors)
		return
	}

	user, err := h.Users.Register(c.Request.Context(), form.Name, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			respond.Error(c, http.StatusConflict, "email_taken", "Email already registered", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create account", nil)
		return
	}

	h.issueSession(c, http.StatusCreated, user)
}

func (h *Handler) login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if fieldErrors := forms.ValidateLogin(form); len(fieldErrors) > 0 {
		respond.ValidationError(c, fieldErrors)
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			respond.Error(c, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to sign in", nil)
		return
	}

	h.issueSession(c, http.StatusOK, user)
}

func (h *Handler) issueSession(c *gin.Context, status int, user users.User) {
	token, err := sharedauth.SignSession(user.ID, user.Email, user.Name)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to issue token", nil)
		return
	}
	respond.JSON(c, status, sessionResponse{Token: token, User: user})
}
