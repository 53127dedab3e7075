package repository

import (
	"context"

	"gorm.io/gorm"

	"hrdashboard/internal/model"
)

// ApplicationRepository defines application persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	List(ctx context.Context, jobID *uint) ([]model.Application, error)
	FindByResumeKey(ctx context.Context, key string) (*model.Application, error)
	Count(ctx context.Context) (int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts an application record.
func (r *applicationRepository) Create(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Omit("Job").Create(app).Error
}

// List returns applications newest first, optionally restricted to one job.
// The job is preloaded for its title and stays nil when it was deleted.
func (r *applicationRepository) List(ctx context.Context, jobID *uint) ([]model.Application, error) {
	q := r.db.WithContext(ctx).Preload("Job")
	if jobID != nil {
		q = q.Where("job_id = ?", *jobID)
	}

	var apps []model.Application
	if err := q.Order("created_at DESC").Order("id DESC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// FindByResumeKey finds the application that owns a stored resume.
func (r *applicationRepository) FindByResumeKey(ctx context.Context, key string) (*model.Application, error) {
	var app model.Application
	if err := r.db.WithContext(ctx).Where("resume_key = ?", key).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// Count returns the number of applications.
func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Application{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
