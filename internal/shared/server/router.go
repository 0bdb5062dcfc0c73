package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/ats"
	googleauth "resume-builder-backend/internal/auth"
	"resume-builder-backend/internal/export"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/metrics"
	"resume-builder-backend/internal/shared/server/middleware"
	"resume-builder-backend/internal/shared/server/respond"
	"resume-builder-backend/internal/templates"
	"resume-builder-backend/internal/users"
)

// Rate limit groups. Export and scoring fan out to Chrome or an external
// API, so they get much tighter budgets than plain CRUD.
const (
	rateGroupDefault = "DEFAULT"
	rateGroupExport  = "EXPORT"
	rateGroupATS     = "ATS"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	ResumeHandler   *resumes.Handler
	TemplateHandler *templates.Handler
	ATSHandler      *ats.Handler
	ExportHandler   *export.Handler
	AuthHandler     *googleauth.Handler
	UserHandler     *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				rateGroupDefault: {Rate: 20, Burst: 40},
				rateGroupExport:  {Rate: 0.5, Burst: 3},
				rateGroupATS:     {Rate: 0.5, Burst: 3},
			},
			DefaultGroup: rateGroupDefault,
			GroupFor:     rateGroupFor,
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterRoutes(api)
	}
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.TemplateHandler != nil {
		deps.TemplateHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.ATSHandler != nil {
		deps.ATSHandler.RegisterRoutes(api)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(api)
	}

	return r
}

func rateGroupFor(c *gin.Context) string {
	path := c.FullPath()
	switch {
	case strings.HasSuffix(path, "/export"):
		return rateGroupExport
	case strings.HasSuffix(path, "/ats-score"):
		return rateGroupATS
	default:
		return rateGroupDefault
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
