package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/esgmate/esg-platform/internal/api/handler"
	"github.com/esgmate/esg-platform/internal/api/middleware"
	"github.com/esgmate/esg-platform/internal/core/ports"
	"github.com/esgmate/esg-platform/internal/infrastructure/config"
)

// newEcho builds an Echo instance with the middleware stack shared by every
// service: panic recovery, request ids, CORS, request metrics, central
// error mapping and request validation.
func newEcho(subsystem string, allowedOrigins []string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: allowedOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware(subsystem))
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// NewGatewayRouter wires the gateway's aggregation and registry routes.
func NewGatewayRouter(cfg *config.GatewayConfig, health ports.HealthChecker, log zerolog.Logger) *echo.Echo {
	e := newEcho("gateway", cfg.AllowedOrigins, log)

	h := handler.NewGatewayHandler(health, cfg.Port)
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.GET("/health/all", h.HealthAll)
	e.GET("/services", h.Services)

	return e
}

// NewAuthRouter wires the authentication service routes.
func NewAuthRouter(cfg *config.AuthConfig, auth ports.AuthService, log zerolog.Logger) *echo.Echo {
	e := newEcho("auth", cfg.AllowedOrigins, log)

	ttl := time.Duration(cfg.TokenTTLMinutes) * time.Minute
	h := handler.NewAuthHandler(auth, ttl, cfg.Port)
	authenticated := middleware.Auth(cfg.JWTSecret)

	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
	e.POST("/refresh", h.Refresh)
	e.GET("/verify", h.Verify)

	e.GET("/users", h.ListUsers)
	e.PUT("/users/:id", h.UpdateUser, authenticated)
	e.POST("/users/:id/change-password", h.ChangePassword)
	e.DELETE("/users/:id", h.DeleteUser, authenticated, middleware.RBAC("admin"))

	return e
}

// NewGRIRouter wires the GRI standards service routes.
func NewGRIRouter(cfg *config.GRIConfig, service ports.GRIService, log zerolog.Logger) *echo.Echo {
	e := newEcho("gri", cfg.AllowedOrigins, log)

	h := handler.NewGRIHandler(service, cfg.Port)
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.GET("/standards", h.ListStandards)
	e.GET("/standards/:id", h.GetStandard)
	e.POST("/standards", h.CreateStandard)
	e.PUT("/standards/:id", h.UpdateStandard)
	e.DELETE("/standards/:id", h.DeleteStandard)

	e.GET("/reporting", h.ListReporting)
	e.GET("/reporting/:id", h.GetReporting)
	e.POST("/reporting", h.CreateReporting)
	e.PUT("/reporting/:id", h.UpdateReporting)
	e.DELETE("/reporting/:id", h.DeleteReporting)

	return e
}

// NewMaterialityRouter wires the materiality assessment service routes.
func NewMaterialityRouter(cfg *config.MaterialityConfig, service ports.MaterialityService, log zerolog.Logger) *echo.Echo {
	e := newEcho("materiality", cfg.AllowedOrigins, log)

	h := handler.NewMaterialityHandler(service, cfg.Port)
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.GET("/topics", h.ListTopics)
	e.GET("/topics/:id", h.GetTopic)
	e.POST("/topics", h.CreateTopic)
	e.PUT("/topics/:id", h.UpdateTopic)
	e.DELETE("/topics/:id", h.DeleteTopic)

	e.GET("/assessments", h.ListAssessments)
	e.GET("/assessments/:id", h.GetAssessment)
	e.POST("/assessments", h.CreateAssessment)
	e.PUT("/assessments/:id", h.UpdateAssessment)
	e.DELETE("/assessments/:id", h.DeleteAssessment)

	e.GET("/matrix", h.Matrix)

	return e
}
