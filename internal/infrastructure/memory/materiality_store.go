package memory

import (
	"context"
	"sync"
	"time"

	"github.com/esgmate/esg-platform/internal/core/domain"
)

// MaterialityStore is a concurrency-safe in-memory store of materiality
// topics and assessments, seeded with a small baseline set.
type MaterialityStore struct {
	mu               sync.RWMutex
	topics           map[int]*domain.MaterialityTopic
	assessments      map[int]*domain.MaterialityAssessment
	nextTopicID      int
	nextAssessmentID int
}

// NewMaterialityStore returns a store seeded with baseline topics and one
// assessment.
func NewMaterialityStore() *MaterialityStore {
	now := time.Now().UTC()

	s := &MaterialityStore{
		topics:      make(map[int]*domain.MaterialityTopic),
		assessments: make(map[int]*domain.MaterialityAssessment),
	}

	seedTopics := []*domain.MaterialityTopic{
		{
			ID:                    1,
			Topic:                 "Climate Change",
			Description:           "Greenhouse gas emissions and climate transition risk",
			ImpactLevel:           domain.ImpactCritical,
			StakeholderImportance: domain.ImpactHigh,
			Category:              "Environmental",
		},
		{
			ID:                    2,
			Topic:                 "Labor Practices",
			Description:           "Working conditions, fair wages and employee wellbeing",
			ImpactLevel:           domain.ImpactHigh,
			StakeholderImportance: domain.ImpactHigh,
			Category:              "Social",
		},
		{
			ID:                    3,
			Topic:                 "Data Privacy",
			Description:           "Customer data protection and security practices",
			ImpactLevel:           domain.ImpactMedium,
			StakeholderImportance: domain.ImpactCritical,
			Category:              "Governance",
		},
	}
	for _, topic := range seedTopics {
		topic.CreatedAt = now
		topic.UpdatedAt = now
		s.topics[topic.ID] = topic
	}
	s.nextTopicID = len(seedTopics) + 1

	s.assessments[1] = &domain.MaterialityAssessment{
		ID:             1,
		TopicID:        1,
		AssessmentDate: now,
		Score:          8.5,
		Notes:          "Initial assessment for the 2024 reporting cycle",
		Assessor:       "ESG Team",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.nextAssessmentID = 2

	return s
}

func (s *MaterialityStore) ListTopics(_ context.Context) ([]*domain.MaterialityTopic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topics := make([]*domain.MaterialityTopic, 0, len(s.topics))
	for id := 1; id < s.nextTopicID; id++ {
		if topic, ok := s.topics[id]; ok {
			topics = append(topics, cloneTopic(topic))
		}
	}
	return topics, nil
}

func (s *MaterialityStore) FindTopicByID(_ context.Context, id int) (*domain.MaterialityTopic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topic, ok := s.topics[id]
	if !ok {
		return nil, domain.ErrTopicNotFound
	}
	return cloneTopic(topic), nil
}

func (s *MaterialityStore) CreateTopic(_ context.Context, topic *domain.MaterialityTopic) (*domain.MaterialityTopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	created := cloneTopic(topic)
	created.ID = s.nextTopicID
	created.CreatedAt = now
	created.UpdatedAt = now

	s.topics[created.ID] = created
	s.nextTopicID++

	return cloneTopic(created), nil
}

func (s *MaterialityStore) UpdateTopic(_ context.Context, id int, patch domain.MaterialityTopicPatch) (*domain.MaterialityTopic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic, ok := s.topics[id]
	if !ok {
		return nil, domain.ErrTopicNotFound
	}

	if patch.Topic != nil {
		topic.Topic = *patch.Topic
	}
	if patch.Description != nil {
		topic.Description = *patch.Description
	}
	if patch.ImpactLevel != nil {
		topic.ImpactLevel = *patch.ImpactLevel
	}
	if patch.StakeholderImportance != nil {
		topic.StakeholderImportance = *patch.StakeholderImportance
	}
	if patch.Category != nil {
		topic.Category = *patch.Category
	}
	topic.UpdatedAt = time.Now().UTC()

	return cloneTopic(topic), nil
}

func (s *MaterialityStore) DeleteTopic(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.topics[id]; !ok {
		return false, nil
	}
	delete(s.topics, id)
	return true, nil
}

func (s *MaterialityStore) ListAssessments(_ context.Context) ([]*domain.MaterialityAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	assessments := make([]*domain.MaterialityAssessment, 0, len(s.assessments))
	for id := 1; id < s.nextAssessmentID; id++ {
		if a, ok := s.assessments[id]; ok {
			assessments = append(assessments, cloneAssessment(a))
		}
	}
	return assessments, nil
}

func (s *MaterialityStore) FindAssessmentByID(_ context.Context, id int) (*domain.MaterialityAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assessments[id]
	if !ok {
		return nil, domain.ErrAssessmentNotFound
	}
	return cloneAssessment(a), nil
}

func (s *MaterialityStore) CreateAssessment(_ context.Context, assessment *domain.MaterialityAssessment) (*domain.MaterialityAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	created := cloneAssessment(assessment)
	created.ID = s.nextAssessmentID
	created.CreatedAt = now
	created.UpdatedAt = now

	s.assessments[created.ID] = created
	s.nextAssessmentID++

	return cloneAssessment(created), nil
}

func (s *MaterialityStore) UpdateAssessment(_ context.Context, id int, patch domain.MaterialityAssessmentPatch) (*domain.MaterialityAssessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assessments[id]
	if !ok {
		return nil, domain.ErrAssessmentNotFound
	}

	if patch.AssessmentDate != nil {
		a.AssessmentDate = *patch.AssessmentDate
	}
	if patch.Score != nil {
		a.Score = *patch.Score
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}
	if patch.Assessor != nil {
		a.Assessor = *patch.Assessor
	}
	a.UpdatedAt = time.Now().UTC()

	return cloneAssessment(a), nil
}

func (s *MaterialityStore) DeleteAssessment(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assessments[id]; !ok {
		return false, nil
	}
	delete(s.assessments, id)
	return true, nil
}

func cloneTopic(topic *domain.MaterialityTopic) *domain.MaterialityTopic {
	clone := *topic
	return &clone
}

func cloneAssessment(a *domain.MaterialityAssessment) *domain.MaterialityAssessment {
	clone := *a
	return &clone
}
