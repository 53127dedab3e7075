package repository

import (
	"context"

	"gorm.io/gorm"

	"hrdashboard/internal/model"
)

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Update(ctx context.Context, id uint, fields model.JobFields) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	ListOptions(ctx context.Context) ([]model.JobOption, error)
	Count(ctx context.Context) (int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create inserts a job; the store assigns its id.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Update overwrites every editable field of the job. It returns
// gorm.ErrRecordNotFound when no job has the given id.
func (r *jobRepository) Update(ctx context.Context, id uint, fields model.JobFields) error {
	res := r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		Select("title", "description", "location", "job_type").
		Updates(map[string]interface{}{
			"title":       fields.Title,
			"description": fields.Description,
			"location":    fields.Location,
			"job_type":    fields.JobType,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	// MySQL reports zero affected rows when nothing changed.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the job. Applications referencing it are left untouched.
func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Job{}).Error
}

// FindByID finds a job by ID.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// List returns every job, newest first.
func (r *jobRepository) List(ctx context.Context) ([]model.Job, error) {
	var jobs []model.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListOptions returns id and title of every job for filter controls.
func (r *jobRepository) ListOptions(ctx context.Context) ([]model.JobOption, error) {
	var options []model.JobOption
	if err := r.db.WithContext(ctx).Model(&model.Job{}).
		Select("id", "title").
		Order("id DESC").
		Scan(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

// Count returns the number of jobs.
func (r *jobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Job{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
