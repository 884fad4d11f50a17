package ports

import (
	"context"
	"time"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// MaterialityStore holds materiality topics and assessments.
type MaterialityStore interface {
	ListTopics(ctx context.Context) ([]*domain.MaterialityTopic, error)
	FindTopicByID(ctx context.Context, id int) (*domain.MaterialityTopic, error)
	CreateTopic(ctx context.Context, topic *domain.MaterialityTopic) (*domain.MaterialityTopic, error)
	UpdateTopic(ctx context.Context, id int, patch domain.MaterialityTopicPatch) (*domain.MaterialityTopic, error)
	DeleteTopic(ctx context.Context, id int) (bool, error)

	ListAssessments(ctx context.Context) ([]*domain.MaterialityAssessment, error)
	FindAssessmentByID(ctx context.Context, id int) (*domain.MaterialityAssessment, error)
	CreateAssessment(ctx context.Context, assessment *domain.MaterialityAssessment) (*domain.MaterialityAssessment, error)
	UpdateAssessment(ctx context.Context, id int, patch domain.MaterialityAssessmentPatch) (*domain.MaterialityAssessment, error)
	DeleteAssessment(ctx context.Context, id int) (bool, error)
}

// CreateTopicInput carries the fields for a new materiality topic.
type CreateTopicInput struct {
	Topic                 string
	Description           string
	ImpactLevel           domain.ImpactLevel
	StakeholderImportance domain.ImpactLevel
	Category              string
}

// CreateAssessmentInput carries the fields for a new assessment.
type CreateAssessmentInput struct {
	TopicID        int
	AssessmentDate time.Time
	Score          float64
	Notes          string
	Assessor       string
}

// MaterialityService exposes CRUD over topics and assessments plus the
// aggregated materiality matrix.
type MaterialityService interface {
	ListTopics(ctx context.Context) ([]*domain.MaterialityTopic, error)
	GetTopic(ctx context.Context, id int) (*domain.MaterialityTopic, error)
	CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.MaterialityTopic, error)
	UpdateTopic(ctx context.Context, id int, patch domain.MaterialityTopicPatch) (*domain.MaterialityTopic, error)
	DeleteTopic(ctx context.Context, id int) (bool, error)

	ListAssessments(ctx context.Context) ([]*domain.MaterialityAssessment, error)
	GetAssessment(ctx context.Context, id int) (*domain.MaterialityAssessment, error)
	CreateAssessment(ctx context.Context, input CreateAssessmentInput) (*domain.MaterialityAssessment, error)
	UpdateAssessment(ctx context.Context, id int, patch domain.MaterialityAssessmentPatch) (*domain.MaterialityAssessment, error)
	DeleteAssessment(ctx context.Context, id int) (bool, error)

	Matrix(ctx context.Context) (*domain.MaterialityMatrix, error)
}
