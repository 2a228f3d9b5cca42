package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/voicenotes/internal/adapter/dto/common"
	"github.com/johnquangdev/voicenotes/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/voicenotes/pkg/config"
)

// HealthCheck checks one backing component
type HealthCheck func(ctx context.Context) error

const healthTimeout = 3 * time.Second

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	studyHandler *Study
	checks       map[string]HealthCheck
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, studyHandler *Study) *Router {
	return &Router{
		cfg:          cfg,
		studyHandler: studyHandler,
		checks:       make(map[string]HealthCheck),
	}
}

// AddHealthCheck registers a component checked by /health
func (rt *Router) AddHealthCheck(name string, check HealthCheck) {
	rt.checks[name] = check
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/v1", middleware.EchoSession(rt.cfg.IsProduction()))
	rt.setupStudyRoutes(v1)
}

// setupStudyRoutes configures processing and result routes
func (rt *Router) setupStudyRoutes(g *echo.Group) {
	if rt.studyHandler == nil {
		g.POST("/process", rt.notImplemented)
		g.GET("/results", rt.notImplemented)
		g.GET("/results/export/:format", rt.notImplemented)
		g.GET("/runs", rt.notImplemented)
		return
	}

	g.POST("/process", rt.studyHandler.Process)
	g.GET("/results", rt.studyHandler.Results)
	g.GET("/results/export/:format", rt.studyHandler.Export)
	g.GET("/runs", rt.studyHandler.Runs)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status
// @Summary      Health check
// @Description  Reports service status and the state of each configured component
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Failure      503  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Time:        time.Now().UTC(),
	}

	names := make([]string, 0, len(rt.checks))
	for name := range rt.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	if len(names) > 0 {
		resp.Components = make(map[string]string, len(names))
	}
	for _, name := range names {
		if err := rt.checks[name](ctx); err != nil {
			resp.Components[name] = "down: " + err.Error()
			resp.Status = "degraded"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Components[name] = "up"
	}

	return c.JSON(status, resp)
}
