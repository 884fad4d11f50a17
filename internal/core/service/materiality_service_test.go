package service

import (
	"context"
	"testing"
	"time"

	"github.com/esgmate/esg-platform/internal/core/domain"
	"github.com/esgmate/esg-platform/internal/core/ports"
	"github.com/esgmate/esg-platform/internal/infrastructure/memory"
)

func newTestMaterialityService() *MaterialityServiceImpl {
	return NewMaterialityService(memory.NewMaterialityStore(), discardLogger)
}

func TestMaterialityService_CreateTopic(t *testing.T) {
	svc := newTestMaterialityService()

	created, err := svc.CreateTopic(context.Background(), ports.CreateTopicInput{
		Topic:                 "Water Stewardship",
		Description:           "Water withdrawal and discharge management",
		ImpactLevel:           domain.ImpactHigh,
		StakeholderImportance: domain.ImpactMedium,
		Category:              "Environmental",
	})
	if err != nil {
		t.Fatalf("CreateTopic returned error: %v", err)
	}
	if created.ID == 0 || created.Topic != "Water Stewardship" {
		t.Errorf("unexpected topic: %+v", created)
	}
}

func TestMaterialityService_CreateTopic_InvalidLevels(t *testing.T) {
	svc := newTestMaterialityService()

	_, err := svc.CreateTopic(context.Background(), ports.CreateTopicInput{
		Topic:                 "Water Stewardship",
		ImpactLevel:           "Extreme",
		StakeholderImportance: domain.ImpactMedium,
	})
	if err != domain.ErrInvalidInput {
		t.Fatalf("bad impact level: expected ErrInvalidInput, got %v", err)
	}

	_, err = svc.CreateTopic(context.Background(), ports.CreateTopicInput{
		Topic:                 "Water Stewardship",
		ImpactLevel:           domain.ImpactHigh,
		StakeholderImportance: "Extreme",
	})
	if err != domain.ErrInvalidInput {
		t.Fatalf("bad stakeholder importance: expected ErrInvalidInput, got %v", err)
	}
}

func TestMaterialityService_UpdateTopic(t *testing.T) {
	svc := newTestMaterialityService()

	level := domain.ImpactLow
	updated, err := svc.UpdateTopic(context.Background(), 1, domain.MaterialityTopicPatch{ImpactLevel: &level})
	if err != nil {
		t.Fatalf("UpdateTopic returned error: %v", err)
	}
	if updated.ImpactLevel != domain.ImpactLow {
		t.Errorf("impact level not updated: %q", updated.ImpactLevel)
	}
	if updated.Topic != "Climate Change" {
		t.Errorf("topic name must be untouched: %q", updated.Topic)
	}

	bad := domain.ImpactLevel("Extreme")
	if _, err := svc.UpdateTopic(context.Background(), 1, domain.MaterialityTopicPatch{ImpactLevel: &bad}); err != domain.ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	if _, err := svc.UpdateTopic(context.Background(), 999, domain.MaterialityTopicPatch{ImpactLevel: &level}); err != domain.ErrTopicNotFound {
		t.Errorf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestMaterialityService_CreateAssessment(t *testing.T) {
	svc := newTestMaterialityService()

	created, err := svc.CreateAssessment(context.Background(), ports.CreateAssessmentInput{
		TopicID:        2,
		AssessmentDate: time.Now().UTC(),
		Score:          6.0,
		Assessor:       "ESG Team",
	})
	if err != nil {
		t.Fatalf("CreateAssessment returned error: %v", err)
	}
	if created.TopicID != 2 || created.Score != 6.0 {
		t.Errorf("unexpected assessment: %+v", created)
	}
}

func TestMaterialityService_CreateAssessment_Validation(t *testing.T) {
	svc := newTestMaterialityService()

	// Score out of range.
	for _, score := range []float64{-0.1, 10.1} {
		if _, err := svc.CreateAssessment(context.Background(), ports.CreateAssessmentInput{TopicID: 1, Score: score}); err != domain.ErrInvalidInput {
			t.Errorf("score %v: expected ErrInvalidInput, got %v", score, err)
		}
	}

	// Unknown topic.
	if _, err := svc.CreateAssessment(context.Background(), ports.CreateAssessmentInput{TopicID: 999, Score: 5}); err != domain.ErrTopicNotFound {
		t.Errorf("expected ErrTopicNotFound, got %v", err)
	}
}

func TestMaterialityService_Matrix(t *testing.T) {
	svc := newTestMaterialityService()

	// Add a second assessment for topic 1 so the average is meaningful.
	if _, err := svc.CreateAssessment(context.Background(), ports.CreateAssessmentInput{
		TopicID:        1,
		AssessmentDate: time.Now().UTC(),
		Score:          7.5,
		Assessor:       "ESG Team",
	}); err != nil {
		t.Fatalf("CreateAssessment returned error: %v", err)
	}

	matrix, err := svc.Matrix(context.Background())
	if err != nil {
		t.Fatalf("Matrix returned error: %v", err)
	}

	if len(matrix.Topics) != 3 {
		t.Fatalf("expected 3 topics, got %d", len(matrix.Topics))
	}
	if len(matrix.Assessments) != 2 {
		t.Fatalf("expected 2 assessments, got %d", len(matrix.Assessments))
	}
	if len(matrix.MatrixData) != 3 {
		t.Fatalf("expected 3 matrix cells, got %d", len(matrix.MatrixData))
	}

	cells := make(map[int]domain.MatrixCell, len(matrix.MatrixData))
	for _, cell := range matrix.MatrixData {
		cells[cell.TopicID] = cell
	}

	// Topic 1 carries the seeded 8.5 plus the 7.5 added above.
	if cells[1].AssessmentCount != 2 {
		t.Errorf("topic 1: expected 2 assessments, got %d", cells[1].AssessmentCount)
	}
	if cells[1].AverageScore != 8.0 {
		t.Errorf("topic 1: expected average 8.0, got %v", cells[1].AverageScore)
	}

	// Topics with no assessments report a zero average and count.
	if cells[2].AssessmentCount != 0 || cells[2].AverageScore != 0 {
		t.Errorf("topic 2: expected empty cell, got %+v", cells[2])
	}
}
