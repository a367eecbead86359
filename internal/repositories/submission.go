package repositories

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"alfredoptarigan/resume-matcher/internal/models"
)

type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	FindAll(ctx context.Context) ([]models.Submission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create implements SubmissionRepository.
func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if submission.Timestamp.IsZero() {
		submission.Timestamp = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

// FindAll implements SubmissionRepository. Newest first; rows sharing a
// timestamp come back in reverse insertion order.
func (r *submissionRepository) FindAll(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&submissions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find submissions: %w", err)
	}

	return submissions, nil
}
