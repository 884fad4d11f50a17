package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

// GRIHandler handles HTTP requests for the GRI standards service.
type GRIHandler struct {
	service ports.GRIService
	port    int
}

func NewGRIHandler(service ports.GRIService, port int) *GRIHandler {
	return &GRIHandler{service: service, port: port}
}

// Root handles GET /, the service banner.
func (h *GRIHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "GRI Standards Service",
		"port":      h.port,
		"endpoints": []string{"/standards", "/reporting", "/health"},
	})
}

// Health handles GET /health, the liveness probe.
func (h *GRIHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "gri",
		"port":    h.port,
	})
}

// ListStandards handles GET /standards. An optional ?code= filter returns
// the single standard with that code.
func (h *GRIHandler) ListStandards(c echo.Context) error {
	if code := c.QueryParam("code"); code != "" {
		standard, err := h.service.GetStandardByCode(c.Request().Context(), code)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, []*domain.GRIStandard{standard})
	}

	standards, err := h.service.ListStandards(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, standards)
}

// GetStandard handles GET /standards/:id.
func (h *GRIHandler) GetStandard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	standard, err := h.service.GetStandard(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, standard)
}

// CreateStandard handles POST /standards.
func (h *GRIHandler) CreateStandard(c echo.Context) error {
	var req createStandardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	standard, err := h.service.CreateStandard(c.Request().Context(), ports.CreateStandardInput{
		Code:            req.Code,
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		DisclosureLevel: req.DisclosureLevel,
		Version:         req.Version,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, standard)
}

// UpdateStandard handles PUT /standards/:id.
func (h *GRIHandler) UpdateStandard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateStandardRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	standard, err := h.service.UpdateStandard(c.Request().Context(), id, domain.GRIStandardPatch{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		DisclosureLevel: req.DisclosureLevel,
		Version:         req.Version,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, standard)
}

// DeleteStandard handles DELETE /standards/:id.
func (h *GRIHandler) DeleteStandard(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteStandard(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "standard not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Standard deleted successfully"})
}

// ListReporting handles GET /reporting.
func (h *GRIHandler) ListReporting(c echo.Context) error {
	entries, err := h.service.ListReporting(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// GetReporting handles GET /reporting/:id.
func (h *GRIHandler) GetReporting(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	entry, err := h.service.GetReporting(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// CreateReporting handles POST /reporting.
func (h *GRIHandler) CreateReporting(c echo.Context) error {
	var req createReportingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.CreateReporting(c.Request().Context(), ports.CreateReportingInput{
		StandardID:          req.StandardID,
		ReportingPeriod:     req.ReportingPeriod,
		Status:              req.Status,
		ImplementationLevel: req.ImplementationLevel,
		Notes:               req.Notes,
		Reporter:            req.Reporter,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// UpdateReporting handles PUT /reporting/:id.
func (h *GRIHandler) UpdateReporting(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateReportingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.service.UpdateReporting(c.Request().Context(), id, domain.GRIReportingPatch{
		ReportingPeriod:     req.ReportingPeriod,
		Status:              req.Status,
		ImplementationLevel: req.ImplementationLevel,
		Notes:               req.Notes,
		Reporter:            req.Reporter,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// DeleteReporting handles DELETE /reporting/:id.
func (h *GRIHandler) DeleteReporting(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteReporting(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "reporting entry not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Reporting entry deleted successfully"})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
