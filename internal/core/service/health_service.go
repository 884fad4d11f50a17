package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/esgmate/esg-platform/internal/api/metrics"
	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

// HealthService fans health probes out over the registered endpoints. Every
// probe runs in its own goroutine with its own timeout, so total latency is
// bounded by the slowest probe and one dead service never delays or fails
// reporting on the others.
type HealthService struct {
	endpoints []domain.ServiceEndpoint
	prober    ports.Prober
	log       zerolog.Logger
}

func NewHealthService(endpoints []domain.ServiceEndpoint, prober ports.Prober, log zerolog.Logger) *HealthService {
	return &HealthService{endpoints: endpoints, prober: prober, log: log}
}

// Endpoints returns the static registry loaded at startup.
func (s *HealthService) Endpoints() []domain.ServiceEndpoint {
	return s.endpoints
}

// CheckAll probes every registered endpoint concurrently and merges the
// outcomes. The returned map always holds exactly one report per endpoint;
// aggregation as a whole never fails.
func (s *HealthService) CheckAll(ctx context.Context) map[string]domain.HealthReport {
	results := make([]domain.HealthReport, len(s.endpoints))

	var wg sync.WaitGroup
	for i, ep := range s.endpoints {
		wg.Add(1)
		go func(i int, ep domain.ServiceEndpoint) {
			defer wg.Done()

			start := time.Now()
			report := s.prober.Probe(ctx, ep)
			results[i] = report

			metrics.HealthProbesTotal.WithLabelValues(ep.Name, report.Status).Inc()
			metrics.HealthProbeDuration.WithLabelValues(ep.Name).Observe(time.Since(start).Seconds())

			if report.Status != domain.StatusHealthy {
				s.log.Warn().Str("service", ep.Name).Str("error", report.Error).Msg("health probe failed")
			}
		}(i, ep)
	}
	wg.Wait()

	reports := make(map[string]domain.HealthReport, len(results))
	for _, r := range results {
		reports[r.Service] = r
	}
	return reports
}
