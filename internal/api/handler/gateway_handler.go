package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esgmate/esg-platform/internal/core/ports"
)

// GatewayHandler handles the gateway's aggregation and registry endpoints.
type GatewayHandler struct {
	health ports.HealthChecker
	port   int
}

func NewGatewayHandler(health ports.HealthChecker, port int) *GatewayHandler {
	return &GatewayHandler{health: health, port: port}
}

type serviceInfo struct {
	URL         string `json:"url"`
	Port        int    `json:"port"`
	Description string `json:"description"`
}

// Root handles GET /, the gateway banner with the registered service names.
func (h *GatewayHandler) Root(c echo.Context) error {
	endpoints := h.health.Endpoints()
	names := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		names = append(names, ep.Name)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":  "ESG Mate Gateway",
		"port":     h.port,
		"services": names,
	})
}

// Health handles GET /health, the gateway's own liveness probe.
func (h *GatewayHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "gateway",
		"port":    h.port,
	})
}

// HealthAll handles GET /health/all, the aggregated health over every
// registered service. Always 200 with one entry per service.
//
// @Summary      Aggregate health of all registered services
// @Tags         gateway
// @Produce      json
// @Success      200  {object}  map[string]domain.HealthReport
// @Router       /health/all [get]
func (h *GatewayHandler) HealthAll(c echo.Context) error {
	return c.JSON(http.StatusOK, h.health.CheckAll(c.Request().Context()))
}

// Services handles GET /services, the static endpoint metadata per service.
//
// @Summary      List registered services
// @Tags         gateway
// @Produce      json
// @Success      200  {object}  map[string]serviceInfo
// @Router       /services [get]
func (h *GatewayHandler) Services(c echo.Context) error {
	services := make(map[string]serviceInfo)
	for _, ep := range h.health.Endpoints() {
		services[ep.Name] = serviceInfo{
			URL:         ep.URL,
			Port:        ep.Port,
			Description: ep.Description,
		}
	}
	return c.JSON(http.StatusOK, services)
}
