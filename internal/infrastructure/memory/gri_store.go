package memory

import (
	"context"
	"sync"
	"time"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// GRIStore is a concurrency-safe in-memory store of GRI standards and
// reporting entries, seeded with the baseline 2021 standards.
type GRIStore struct {
	mu              sync.RWMutex
	standards       map[int]*domain.GRIStandard
	reporting       map[int]*domain.GRIReporting
	nextStandardID  int
	nextReportingID int
}

// NewGRIStore returns a store seeded with the baseline standards and one
// in-progress reporting entry.
func NewGRIStore() *GRIStore {
	now := time.Now().UTC()

	s := &GRIStore{
		standards: make(map[int]*domain.GRIStandard),
		reporting: make(map[int]*domain.GRIReporting),
	}

	seedStandards := []*domain.GRIStandard{
		{
			ID:              1,
			Code:            "GRI 101",
			Title:           "Foundation",
			Description:     "Foundation principles and concepts for sustainability reporting",
			Category:        domain.CategoryFoundation,
			DisclosureLevel: "Core",
			Version:         "2021",
		},
		{
			ID:              2,
			Code:            "GRI 201",
			Title:           "Economic Performance",
			Description:     "Economic performance indicators and disclosures",
			Category:        domain.CategoryEconomic,
			DisclosureLevel: "Core",
			Version:         "2021",
		},
		{
			ID:              3,
			Code:            "GRI 301",
			Title:           "Materials",
			Description:     "Materials use and sourcing practices",
			Category:        domain.CategoryEnvironmental,
			DisclosureLevel: "Core",
			Version:         "2021",
		},
	}
	for _, std := range seedStandards {
		std.CreatedAt = now
		std.UpdatedAt = now
		s.standards[std.ID] = std
	}
	s.nextStandardID = len(seedStandards) + 1

	s.reporting[1] = &domain.GRIReporting{
		ID:                  1,
		StandardID:          1,
		ReportingPeriod:     "2024",
		Status:              domain.ReportingInProgress,
		ImplementationLevel: "Advanced",
		Notes:               "Foundation standards implementation in progress",
		Reporter:            "ESG Team",
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	s.nextReportingID = 2

	return s
}

func (s *GRIStore) ListStandards(_ context.Context) ([]*domain.GRIStandard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	standards := make([]*domain.GRIStandard, 0, len(s.standards))
	for id := 1; id < s.nextStandardID; id++ {
		if std, ok := s.standards[id]; ok {
			standards = append(standards, cloneStandard(std))
		}
	}
	return standards, nil
}

func (s *GRIStore) FindStandardByID(_ context.Context, id int) (*domain.GRIStandard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	std, ok := s.standards[id]
	if !ok {
		return nil, domain.ErrStandardNotFound
	}
	return cloneStandard(std), nil
}

func (s *GRIStore) FindStandardByCode(_ context.Context, code string) (*domain.GRIStandard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, std := range s.standards {
		if std.Code == code {
			return cloneStandard(std), nil
		}
	}
	return nil, domain.ErrStandardNotFound
}

func (s *GRIStore) CreateStandard(_ context.Context, standard *domain.GRIStandard) (*domain.GRIStandard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	created := cloneStandard(standard)
	created.ID = s.nextStandardID
	created.CreatedAt = now
	created.UpdatedAt = now

	s.standards[created.ID] = created
	s.nextStandardID++

	return cloneStandard(created), nil
}

func (s *GRIStore) UpdateStandard(_ context.Context, id int, patch domain.GRIStandardPatch) (*domain.GRIStandard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	std, ok := s.standards[id]
	if !ok {
		return nil, domain.ErrStandardNotFound
	}

	if patch.Title != nil {
		std.Title = *patch.Title
	}
	if patch.Description != nil {
		std.Description = *patch.Description
	}
	if patch.Category != nil {
		std.Category = *patch.Category
	}
	if patch.DisclosureLevel != nil {
		std.DisclosureLevel = *patch.DisclosureLevel
	}
	if patch.Version != nil {
		std.Version = *patch.Version
	}
	std.UpdatedAt = time.Now().UTC()

	return cloneStandard(std), nil
}

func (s *GRIStore) DeleteStandard(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.standards[id]; !ok {
		return false, nil
	}
	delete(s.standards, id)
	return true, nil
}

func (s *GRIStore) ListReporting(_ context.Context) ([]*domain.GRIReporting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]*domain.GRIReporting, 0, len(s.reporting))
	for id := 1; id < s.nextReportingID; id++ {
		if entry, ok := s.reporting[id]; ok {
			entries = append(entries, cloneReporting(entry))
		}
	}
	return entries, nil
}

func (s *GRIStore) FindReportingByID(_ context.Context, id int) (*domain.GRIReporting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.reporting[id]
	if !ok {
		return nil, domain.ErrReportingNotFound
	}
	return cloneReporting(entry), nil
}

func (s *GRIStore) CreateReporting(_ context.Context, entry *domain.GRIReporting) (*domain.GRIReporting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	created := cloneReporting(entry)
	created.ID = s.nextReportingID
	created.CreatedAt = now
	created.UpdatedAt = now

	s.reporting[created.ID] = created
	s.nextReportingID++

	return cloneReporting(created), nil
}

func (s *GRIStore) UpdateReporting(_ context.Context, id int, patch domain.GRIReportingPatch) (*domain.GRIReporting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.reporting[id]
	if !ok {
		return nil, domain.ErrReportingNotFound
	}

	if patch.ReportingPeriod != nil {
		entry.ReportingPeriod = *patch.ReportingPeriod
	}
	if patch.Status != nil {
		entry.Status = *patch.Status
	}
	if patch.ImplementationLevel != nil {
		entry.ImplementationLevel = *patch.ImplementationLevel
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}
	if patch.Reporter != nil {
		entry.Reporter = *patch.Reporter
	}
	entry.UpdatedAt = time.Now().UTC()

	return cloneReporting(entry), nil
}

func (s *GRIStore) DeleteReporting(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reporting[id]; !ok {
		return false, nil
	}
	delete(s.reporting, id)
	return true, nil
}

func cloneStandard(std *domain.GRIStandard) *domain.GRIStandard {
	clone := *std
	return &clone
}

func cloneReporting(entry *domain.GRIReporting) *domain.GRIReporting {
	clone := *entry
	return &clone
}
