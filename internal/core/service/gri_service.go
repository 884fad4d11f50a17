package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

// GRIService implements CRUD over GRI standards and reporting entries. The
// mutex makes the code-uniqueness check atomic with the create, mirroring
// how the auth service guards username uniqueness.
type GRIService struct {
	mu    sync.Mutex
	store ports.GRIStore
	log   zerolog.Logger
}

func NewGRIService(store ports.GRIStore, log zerolog.Logger) *GRIService {
	return &GRIService{store: store, log: log}
}

func (s *GRIService) ListStandards(ctx context.Context) ([]*domain.GRIStandard, error) {
	return s.store.ListStandards(ctx)
}

func (s *GRIService) GetStandard(ctx context.Context, id int) (*domain.GRIStandard, error) {
	return s.store.FindStandardByID(ctx, id)
}

func (s *GRIService) GetStandardByCode(ctx context.Context, code string) (*domain.GRIStandard, error) {
	return s.store.FindStandardByCode(ctx, code)
}

func (s *GRIService) CreateStandard(ctx context.Context, input ports.CreateStandardInput) (*domain.GRIStandard, error) {
	if !input.Category.Valid() {
		return nil, domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.FindStandardByCode(ctx, input.Code); err == nil {
		return nil, domain.ErrDuplicateCode
	}

	created, err := s.store.CreateStandard(ctx, &domain.GRIStandard{
		Code:            input.Code,
		Title:           input.Title,
		Description:     input.Description,
		Category:        input.Category,
		DisclosureLevel: input.DisclosureLevel,
		Version:         input.Version,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("code", created.Code).Int("id", created.ID).Msg("standard created")
	return created, nil
}

func (s *GRIService) UpdateStandard(ctx context.Context, id int, patch domain.GRIStandardPatch) (*domain.GRIStandard, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return s.store.UpdateStandard(ctx, id, patch)
}

func (s *GRIService) DeleteStandard(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteStandard(ctx, id)
}

func (s *GRIService) ListReporting(ctx context.Context) ([]*domain.GRIReporting, error) {
	return s.store.ListReporting(ctx)
}

func (s *GRIService) GetReporting(ctx context.Context, id int) (*domain.GRIReporting, error) {
	return s.store.FindReportingByID(ctx, id)
}

func (s *GRIService) CreateReporting(ctx context.Context, input ports.CreateReportingInput) (*domain.GRIReporting, error) {
	if !input.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	// Reporting entries must reference an existing standard.
	if _, err := s.store.FindStandardByID(ctx, input.StandardID); err != nil {
		return nil, err
	}

	return s.store.CreateReporting(ctx, &domain.GRIReporting{
		StandardID:          input.StandardID,
		ReportingPeriod:     input.ReportingPeriod,
		Status:              input.Status,
		ImplementationLevel: input.ImplementationLevel,
		Notes:               input.Notes,
		Reporter:            input.Reporter,
	})
}

func (s *GRIService) UpdateReporting(ctx context.Context, id int, patch domain.GRIReportingPatch) (*domain.GRIReporting, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return s.store.UpdateReporting(ctx, id, patch)
}

func (s *GRIService) DeleteReporting(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteReporting(ctx, id)
}
