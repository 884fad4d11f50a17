package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

type stubHealthChecker struct {
	endpoints []domain.ServiceEndpoint
	reports   map[string]domain.HealthReport
}

func (s *stubHealthChecker) Endpoints() []domain.ServiceEndpoint {
	return s.endpoints
}

func (s *stubHealthChecker) CheckAll(_ context.Context) map[string]domain.HealthReport {
	return s.reports
}

func newStubHealthChecker() *stubHealthChecker {
	return &stubHealthChecker{
		endpoints: []domain.ServiceEndpoint{
			domain.NewServiceEndpoint("auth", "http://localhost:8008"),
			domain.NewServiceEndpoint("gri", "http://localhost:8003"),
		},
		reports: map[string]domain.HealthReport{
			"auth": {Status: domain.StatusHealthy, Service: "auth", Port: 8008, Response: map[string]any{"status": "healthy"}},
			"gri":  {Status: domain.StatusUnhealthy, Service: "gri", Port: 8003, Error: "connection refused"},
		},
	}
}

func TestGatewayHandler_Root(t *testing.T) {
	e := echo.New()
	h := NewGatewayHandler(newStubHealthChecker(), 8080)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	if err := h.Root(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	services, _ := body["services"].([]any)
	if len(services) != 2 {
		t.Fatalf("expected 2 service names, got %v", body["services"])
	}
}

func TestGatewayHandler_HealthAll(t *testing.T) {
	e := echo.New()
	h := NewGatewayHandler(newStubHealthChecker(), 8080)

	req := httptest.NewRequest(http.MethodGet, "/health/all", nil)
	rec := httptest.NewRecorder()
	if err := h.HealthAll(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var reports map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &reports); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports["auth"]["status"] != "healthy" {
		t.Errorf("auth: unexpected report %v", reports["auth"])
	}
	if reports["gri"]["status"] != "unhealthy" || reports["gri"]["error"] != "connection refused" {
		t.Errorf("gri: unexpected report %v", reports["gri"])
	}
	// Healthy reports omit the error field, unhealthy ones the payload.
	if _, present := reports["auth"]["error"]; present {
		t.Error("auth: healthy report must omit error")
	}
	if _, present := reports["gri"]["response"]; present {
		t.Error("gri: unhealthy report must omit response")
	}
}

func TestGatewayHandler_Services(t *testing.T) {
	e := echo.New()
	h := NewGatewayHandler(newStubHealthChecker(), 8080)

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	rec := httptest.NewRecorder()
	if err := h.Services(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var services map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &services); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	auth, ok := services["auth"]
	if !ok {
		t.Fatalf("auth missing from %v", services)
	}
	if auth["url"] != "http://localhost:8008" || auth["port"] != float64(8008) {
		t.Errorf("unexpected auth entry: %v", auth)
	}
	if auth["description"] == "" {
		t.Error("expected a description for auth")
	}
}

func TestGatewayHandler_Health(t *testing.T) {
	e := echo.New()
	h := NewGatewayHandler(newStubHealthChecker(), 8080)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	if err := h.Health(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var body map[string]any
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "healthy" || body["service"] != "gateway" {
		t.Fatalf("unexpected payload: %v", body)
	}
}
