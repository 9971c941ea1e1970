package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "github.com/haseeb-240/AiResume/internal/auth"
	"github.com/haseeb-240/AiResume/internal/generator"
	"github.com/haseeb-240/AiResume/internal/llm"
	openai "github.com/haseeb-240/AiResume/internal/llm/openai"
	"github.com/haseeb-240/AiResume/internal/resumes"
	"github.com/haseeb-240/AiResume/internal/shared/config"
	"github.com/haseeb-240/AiResume/internal/shared/server"
	"github.com/haseeb-240/AiResume/internal/shared/storage/db"
	"github.com/haseeb-240/AiResume/internal/shared/storage/object"
	localstore "github.com/haseeb-240/AiResume/internal/shared/storage/object/local"
	"github.com/haseeb-240/AiResume/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	ResumesRepo resumes.Repo
	UsersRepo   users.Repo

	ResumesService   *resumes.Service
	GeneratorService *generator.Service
	UsersService     *users.Service

	ResumeHandler    *resumes.Handler
	GeneratorHandler *generator.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  localstore.New(cfg.LocalStoreDir),
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           app.Config,
		ResumeHandler:    app.ResumeHandler,
		GeneratorHandler: app.GeneratorHandler,
		UserHandler:      app.UsersHandler,
		GoogleAuth:       app.GoogleAuth,
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
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) error {
	var resumeRepo resumes.Repo
	var userRepo users.Repo

	if app.DB != nil {
		resumeRepo = &resumes.PGRepo{DB: app.DB}
		userRepo = &users.PGRepo{DB: app.DB}
	} else {
		resumeRepo = resumes.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	llmClient := llm.Client(llm.PlaceholderClient{})
	if app.Config.LLMProvider == "openai" && strings.TrimSpace(os.Getenv("OPENAI_API_KEY")) != "" {
		openaiClient, err := openai.NewClient(os.Getenv("OPENAI_API_KEY"), app.Config.LLMModel)
		if err != nil {
			return err
		}
		llmClient = openaiClient
	}

	resumeSvc := resumes.NewService(resumeRepo)
	generatorSvc := generator.NewService(llmClient)
	userSvc := users.NewService(userRepo)

	app.ResumesRepo = resumeRepo
	app.UsersRepo = userRepo
	app.ResumesService = resumeSvc
	app.GeneratorService = generatorSvc
	app.UsersService = userSvc
	app.ResumeHandler = resumes.NewHandler(resumeSvc, resumes.ChromiumExporter{}, app.Store)
	app.GeneratorHandler = generator.NewHandler(generatorSvc)
	app.UsersHandler = users.NewHandler(userSvc)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		userSvc,
	)

	return nil
}
