package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/analysis"
	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/server/middleware"
)

// NewRouter builds the gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, client llm.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	svc := &analysis.Service{
		Client:       client,
		FacetTimeout: cfg.FacetTimeout,
		Parallelism:  cfg.FacetParallelism,
	}
	handler := analysis.NewHandler(svc)

	api := engine.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: middleware.GroupDefault,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/analyses" {
				return middleware.GroupAnalyze
			}
			return middleware.GroupDefault
		},
		Rules: map[string]middleware.RateLimitRule{
			middleware.GroupDefault: {Rate: 10, Burst: 20},
			middleware.GroupAnalyze: {Rate: 0.5, Burst: 3},
		},
	}))

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(api)

	engine.GET("/metrics", metrics.Handler())

	return engine
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
