package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

// MaterialityHandler handles HTTP requests for the materiality service.
type MaterialityHandler struct {
	service ports.MaterialityService
	port    int
}

func NewMaterialityHandler(service ports.MaterialityService, port int) *MaterialityHandler {
	return &MaterialityHandler{service: service, port: port}
}

// Root handles GET /, the service banner.
func (h *MaterialityHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "Materiality Service",
		"port":      h.port,
		"endpoints": []string{"/topics", "/assessments", "/matrix", "/health"},
	})
}

// Health handles GET /health, the liveness probe.
func (h *MaterialityHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "materiality",
		"port":    h.port,
	})
}

// ListTopics handles GET /topics.
func (h *MaterialityHandler) ListTopics(c echo.Context) error {
	topics, err := h.service.ListTopics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topics)
}

// GetTopic handles GET /topics/:id.
func (h *MaterialityHandler) GetTopic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	topic, err := h.service.GetTopic(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topic)
}

// CreateTopic handles POST /topics.
func (h *MaterialityHandler) CreateTopic(c echo.Context) error {
	var req createTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	topic, err := h.service.CreateTopic(c.Request().Context(), ports.CreateTopicInput{
		Topic:                 req.Topic,
		Description:           req.Description,
		ImpactLevel:           req.ImpactLevel,
		StakeholderImportance: req.StakeholderImportance,
		Category:              req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topic)
}

// UpdateTopic handles PUT /topics/:id.
func (h *MaterialityHandler) UpdateTopic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	topic, err := h.service.UpdateTopic(c.Request().Context(), id, domain.MaterialityTopicPatch{
		Topic:                 req.Topic,
		Description:           req.Description,
		ImpactLevel:           req.ImpactLevel,
		StakeholderImportance: req.StakeholderImportance,
		Category:              req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topic)
}

// DeleteTopic handles DELETE /topics/:id.
func (h *MaterialityHandler) DeleteTopic(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteTopic(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "topic not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Topic deleted successfully"})
}

// ListAssessments handles GET /assessments.
func (h *MaterialityHandler) ListAssessments(c echo.Context) error {
	assessments, err := h.service.ListAssessments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessments)
}

// GetAssessment handles GET /assessments/:id.
func (h *MaterialityHandler) GetAssessment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	assessment, err := h.service.GetAssessment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessment)
}

// CreateAssessment handles POST /assessments.
func (h *MaterialityHandler) CreateAssessment(c echo.Context) error {
	var req createAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assessment, err := h.service.CreateAssessment(c.Request().Context(), ports.CreateAssessmentInput{
		TopicID:        req.TopicID,
		AssessmentDate: req.AssessmentDate,
		Score:          req.Score,
		Notes:          req.Notes,
		Assessor:       req.Assessor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessment)
}

// UpdateAssessment handles PUT /assessments/:id.
func (h *MaterialityHandler) UpdateAssessment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAssessmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assessment, err := h.service.UpdateAssessment(c.Request().Context(), id, domain.MaterialityAssessmentPatch{
		AssessmentDate: req.AssessmentDate,
		Score:          req.Score,
		Notes:          req.Notes,
		Assessor:       req.Assessor,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assessment)
}

// DeleteAssessment handles DELETE /assessments/:id.
func (h *MaterialityHandler) DeleteAssessment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.DeleteAssessment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "assessment not found")
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Assessment deleted successfully"})
}

// Matrix handles GET /matrix, returning topics and assessments with per-topic
// aggregates.
func (h *MaterialityHandler) Matrix(c echo.Context) error {
	matrix, err := h.service.Matrix(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, matrix)
}
