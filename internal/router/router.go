package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/internal/config"
	"github.com/stemsi/curriforge/internal/handler"
	"github.com/stemsi/curriforge/internal/middleware"
	"github.com/stemsi/curriforge/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Curriculum *handler.CurriculumHandler
	Health     *handler.HealthHandler
}

// SetupRouter configures the API routes and the frontend fallback.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())

	router.GET("/health", handlers.Health.Health)

	// ─── Curricula API ─────────────────────────────────────────────────
	api := router.Group("/api")
	api.Use(middleware.Brotli(), middleware.NoStore())
	{
		api.GET("/curricula", handlers.Curriculum.List)
		api.POST("/curricula", handlers.Curriculum.Create)
		api.DELETE("/curricula/:id", handlers.Curriculum.Delete)
	}

	// ─── Frontend ──────────────────────────────────────────────────────
	if err := mountFrontend(router, cfg, log); err != nil {
		return nil, err
	}

	return router, nil
}
