package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	googleauth "github.com/haseeb-240/AiResume/internal/auth"
	"github.com/haseeb-240/AiResume/internal/generator"
	"github.com/haseeb-240/AiResume/internal/resumes"
	"github.com/haseeb-240/AiResume/internal/shared/config"
	"github.com/haseeb-240/AiResume/internal/shared/metrics"
	"github.com/haseeb-240/AiResume/internal/shared/server/middleware"
	"github.com/haseeb-240/AiResume/internal/shared/server/respond"
	"github.com/haseeb-240/AiResume/internal/users"
)

// RouterDeps carries the handlers wired by bootstrap.
type RouterDeps struct {
	Config           config.Config
	ResumeHandler    *resumes.Handler
	GeneratorHandler *generator.Handler
	UserHandler      *users.Handler
	GoogleAuth       *googleauth.GoogleService
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
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UserHandler != nil {
		deps.UserHandler.RegisterRoutes(api)
	}
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}
	if deps.GeneratorHandler != nil {
		// Generation burns provider tokens, so it carries its own limiter.
		limiter := middleware.NewRateLimiter(nil)
		rule := middleware.RateLimitRule{Rate: 0.2, Burst: 3}
		api.POST("/generate-resume", middleware.RateLimit(limiter, rule), deps.GeneratorHandler.Generate)
		api.POST("/resumes/import", middleware.RateLimit(limiter, rule), deps.GeneratorHandler.Import)
	}

	return r
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
