package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
)

// MaterialityServiceImpl implements CRUD over materiality topics and
// assessments and builds the aggregated matrix view.
type MaterialityServiceImpl struct {
	store ports.MaterialityStore
	log   zerolog.Logger
}

func NewMaterialityService(store ports.MaterialityStore, log zerolog.Logger) *MaterialityServiceImpl {
	return &MaterialityServiceImpl{store: store, log: log}
}

func (s *MaterialityServiceImpl) ListTopics(ctx context.Context) ([]*domain.MaterialityTopic, error) {
	return s.store.ListTopics(ctx)
}

func (s *MaterialityServiceImpl) GetTopic(ctx context.Context, id int) (*domain.MaterialityTopic, error) {
	return s.store.FindTopicByID(ctx, id)
}

func (s *MaterialityServiceImpl) CreateTopic(ctx context.Context, input ports.CreateTopicInput) (*domain.MaterialityTopic, error) {
	if !input.ImpactLevel.Valid() || !input.StakeholderImportance.Valid() {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.store.CreateTopic(ctx, &domain.MaterialityTopic{
		Topic:                 input.Topic,
		Description:           input.Description,
		ImpactLevel:           input.ImpactLevel,
		StakeholderImportance: input.StakeholderImportance,
		Category:              input.Category,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("id", created.ID).Str("topic", created.Topic).Msg("topic created")
	return created, nil
}

func (s *MaterialityServiceImpl) UpdateTopic(ctx context.Context, id int, patch domain.MaterialityTopicPatch) (*domain.MaterialityTopic, error) {
	if patch.ImpactLevel != nil && !patch.ImpactLevel.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if patch.StakeholderImportance != nil && !patch.StakeholderImportance.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return s.store.UpdateTopic(ctx, id, patch)
}

func (s *MaterialityServiceImpl) DeleteTopic(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteTopic(ctx, id)
}

func (s *MaterialityServiceImpl) ListAssessments(ctx context.Context) ([]*domain.MaterialityAssessment, error) {
	return s.store.ListAssessments(ctx)
}

func (s *MaterialityServiceImpl) GetAssessment(ctx context.Context, id int) (*domain.MaterialityAssessment, error) {
	return s.store.FindAssessmentByID(ctx, id)
}

func (s *MaterialityServiceImpl) CreateAssessment(ctx context.Context, input ports.CreateAssessmentInput) (*domain.MaterialityAssessment, error) {
	if input.Score < 0 || input.Score > 10 {
		return nil, domain.ErrInvalidInput
	}
	// Assessments must reference an existing topic.
	if _, err := s.store.FindTopicByID(ctx, input.TopicID); err != nil {
		return nil, err
	}

	return s.store.CreateAssessment(ctx, &domain.MaterialityAssessment{
		TopicID:        input.TopicID,
		AssessmentDate: input.AssessmentDate,
		Score:          input.Score,
		Notes:          input.Notes,
		Assessor:       input.Assessor,
	})
}

func (s *MaterialityServiceImpl) UpdateAssessment(ctx context.Context, id int, patch domain.MaterialityAssessmentPatch) (*domain.MaterialityAssessment, error) {
	if patch.Score != nil && (*patch.Score < 0 || *patch.Score > 10) {
		return nil, domain.ErrInvalidInput
	}
	return s.store.UpdateAssessment(ctx, id, patch)
}

func (s *MaterialityServiceImpl) DeleteAssessment(ctx context.Context, id int) (bool, error) {
	return s.store.DeleteAssessment(ctx, id)
}

// Matrix combines all topics and assessments with a per-topic average score
// for the materiality matrix visualisation.
func (s *MaterialityServiceImpl) Matrix(ctx context.Context) (*domain.MaterialityMatrix, error) {
	topics, err := s.store.ListTopics(ctx)
	if err != nil {
		return nil, err
	}
	assessments, err := s.store.ListAssessments(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[int]float64, len(topics))
	counts := make(map[int]int, len(topics))
	for _, a := range assessments {
		sums[a.TopicID] += a.Score
		counts[a.TopicID]++
	}

	matrix := &domain.MaterialityMatrix{
		Topics:      make([]domain.MaterialityTopic, 0, len(topics)),
		Assessments: make([]domain.MaterialityAssessment, 0, len(assessments)),
		MatrixData:  make([]domain.MatrixCell, 0, len(topics)),
	}
	for _, a := range assessments {
		matrix.Assessments = append(matrix.Assessments, *a)
	}
	for _, t := range topics {
		matrix.Topics = append(matrix.Topics, *t)

		cell := domain.MatrixCell{
			TopicID:               t.ID,
			Topic:                 t.Topic,
			ImpactLevel:           t.ImpactLevel,
			StakeholderImportance: t.StakeholderImportance,
			AssessmentCount:       counts[t.ID],
		}
		if cell.AssessmentCount > 0 {
			cell.AverageScore = sums[t.ID] / float64(cell.AssessmentCount)
		}
		matrix.MatrixData = append(matrix.MatrixData, cell)
	}

	return matrix, nil
}
