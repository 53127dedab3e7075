package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "hrdashboard/internal/errors"
	"hrdashboard/internal/model"
	"hrdashboard/internal/repository"
)

// JobService handles job posting management.
type JobService interface {
	List(ctx context.Context) ([]model.Job, error)
	Get(ctx context.Context, id uint) (*model.Job, error)
	Create(ctx context.Context, fields model.JobFields) (*model.Job, error)
	Update(ctx context.Context, id uint, fields model.JobFields) error
	Delete(ctx context.Context, id uint) error
}

type jobService struct {
	jobRepo repository.JobRepository
	now     func() time.Time
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo, now: time.Now}
}

// List returns all jobs, most recent first.
func (s *jobService) List(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) Get(ctx context.Context, id uint) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job %d: %w", id, err)
	}
	return job, nil
}

// Create inserts a job posted today.
func (s *jobService) Create(ctx context.Context, fields model.JobFields) (*model.Job, error) {
	if err := validateJobFields(fields); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	job := &model.Job{
		Title:       fields.Title,
		Description: fields.Description,
		Location:    fields.Location,
		JobType:     fields.JobType,
		PostedAt:    time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// Update overwrites every editable field of an existing job.
func (s *jobService) Update(ctx context.Context, id uint, fields model.JobFields) error {
	if err := validateJobFields(fields); err != nil {
		return err
	}

	if err := s.jobRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrJobNotFound
		}
		return fmt.Errorf("update job %d: %w", id, err)
	}
	return nil
}

// Delete removes a job. Deleting a missing job is a no-op and
// applications keep their job id.
func (s *jobService) Delete(ctx context.Context, id uint) error {
	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete job %d: %w", id, err)
	}
	return nil
}

func validateJobFields(fields model.JobFields) error {
	missing := map[string]string{}
	if fields.Title == "" {
		missing["title"] = "required"
	}
	if fields.Description == "" {
		missing["description"] = "required"
	}
	if fields.Location == "" {
		missing["location"] = "required"
	}
	if fields.JobType == "" {
		missing["job_type"] = "required"
	}
	if len(missing) > 0 {
		return &apperrors.ValidationError{Fields: missing}
	}
	return nil
}
