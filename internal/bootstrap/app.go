package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/ats"
	authpkg "resume-builder-backend/internal/auth"
	"resume-builder-backend/internal/export"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
	"resume-builder-backend/internal/shared/storage/db"
	"resume-builder-backend/internal/shared/storage/object"
	localstore "resume-builder-backend/internal/shared/storage/object/local"
	s3store "resume-builder-backend/internal/shared/storage/object/s3"
	"resume-builder-backend/internal/templates"
	"resume-builder-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo resumes.Repo
	UsersRepo   users.Repo

	ResumesService *resumes.Service
	UsersService   *users.Service
	ExportService  *export.Service
	ATSAdvisor     *ats.Advisor

	ResumeHandler   *resumes.Handler
	TemplateHandler *templates.Handler
	ATSHandler      *ats.Handler
	ExportHandler   *export.Handler
	AuthHandler     *authpkg.Handler
	UserHandler     *users.Handler
	GoogleAuth      *authpkg.GoogleService
}

// Build prepares dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		ResumeHandler:   app.ResumeHandler,
		TemplateHandler: app.TemplateHandler,
		ATSHandler:      app.ATSHandler,
		ExportHandler:   app.ExportHandler,
		AuthHandler:     app.AuthHandler,
		UserHandler:     app.UserHandler,
		GoogleAuth:      app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.ResumesService = resumes.NewService(app.ResumesRepo)
	app.UsersService = users.NewService(app.UsersRepo)

	var atsClient *ats.Client
	if app.Config.ATSAPIURL != "" && app.Config.ATSAPIKey != "" {
		client, err := ats.NewClient(app.Config.ATSAPIURL, app.Config.ATSAPIKey, app.Config.ATSTimeout)
		if err != nil {
			log.Printf("bootstrap: ats client disabled: %v", err)
		} else {
			atsClient = client
		}
	}
	app.ATSAdvisor = ats.NewAdvisor(atsClient)

	renderer := export.NewChromeRenderer(app.Config.ChromePath)
	app.ExportService = export.NewService(app.ResumesService, app.Store, renderer)

	app.ResumeHandler = resumes.NewHandler(app.ResumesService)
	app.TemplateHandler = templates.NewHandler()
	app.ATSHandler = ats.NewHandler(app.ATSAdvisor, app.ResumesService)
	app.ExportHandler = export.NewHandler(app.ExportService)
	app.AuthHandler = authpkg.NewHandler(app.UsersService)
	app.UserHandler = users.NewHandler(app.UsersService)
	app.GoogleAuth = authpkg.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
