package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "hrdashboard/internal/errors"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/model"
	"hrdashboard/internal/notify"
	"hrdashboard/internal/repository"
	"hrdashboard/internal/storage"
)

const defaultContentType = "application/octet-stream"

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// ApplyInput carries the applicant fields of a submission.
type ApplyInput struct {
	ApplicantName string
	Email         string
	Phone         string
}

// ResumeUpload is an uploaded resume file.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ApplicationsPage is the staff view of applications plus the job filter options.
type ApplicationsPage struct {
	Applications []model.Application
	Jobs         []model.JobOption
}

// ApplicationOptions tunes intake rules per deployment.
type ApplicationOptions struct {
	ResumeRequired bool
	MaxResumeBytes int64
}

// ApplicationService handles public intake and staff review of applications.
type ApplicationService interface {
	Apply(ctx context.Context, jobID uint, in ApplyInput, resume *ResumeUpload) (*model.Application, error)
	List(ctx context.Context, jobID *uint) (*ApplicationsPage, error)
	Export(ctx context.Context, jobID *uint) ([]byte, error)
	OpenResume(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type applicationService struct {
	jobRepo  repository.JobRepository
	appRepo  repository.ApplicationRepository
	storage  storage.Storage
	notifier notify.Notifier
	opts     ApplicationOptions
}

// NewApplicationService creates a new application service.
func NewApplicationService(
	jobRepo repository.JobRepository,
	appRepo repository.ApplicationRepository,
	store storage.Storage,
	notifier notify.Notifier,
	opts ApplicationOptions,
) ApplicationService {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &applicationService{
		jobRepo:  jobRepo,
		appRepo:  appRepo,
		storage:  store,
		notifier: notifier,
		opts:     opts,
	}
}

// Apply records a submission against an existing job, storing the resume first
// when one is attached.
func (s *applicationService) Apply(ctx context.Context, jobID uint, in ApplyInput, resume *ResumeUpload) (*model.Application, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job %d: %w", jobID, err)
	}

	if err := validateApplyInput(in); err != nil {
		return nil, err
	}
	if resume != nil && len(resume.Data) == 0 {
		resume = nil
	}
	if resume == nil && s.opts.ResumeRequired {
		return nil, apperrors.ErrResumeRequired
	}
	if resume != nil && s.opts.MaxResumeBytes > 0 && int64(len(resume.Data)) > s.opts.MaxResumeBytes {
		return nil, apperrors.ErrResumeTooLarge
	}

	app := &model.Application{
		JobID:         jobID,
		ApplicantName: in.ApplicantName,
		Email:         in.Email,
		Phone:         in.Phone,
	}

	var key string
	if resume != nil {
		contentType := resumeContentType(resume)
		key = uuid.NewString() + resumeExtension(resume)
		if err := s.storage.Save(ctx, key, bytes.NewReader(resume.Data), contentType); err != nil {
			return nil, fmt.Errorf("store resume: %w", err)
		}
		url := s.storage.URL(key)
		app.ResumeURL = &url
		app.ResumeKey = &key
		app.ResumeContentType = &contentType
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		if key != "" {
			if delErr := s.storage.Delete(ctx, key); delErr != nil {
				logger.FromContext(ctx).Warn("failed to remove orphaned resume", "key", key, "error", delErr)
			}
		}
		return nil, fmt.Errorf("create application: %w", err)
	}

	if err := s.notifier.ApplicationReceived(ctx, app, job); err != nil {
		logger.FromContext(ctx).Warn("application notification failed", "application_id", app.ID, "error", err)
	}
	return app, nil
}

// List returns applications, optionally for one job, with every job as a filter option.
func (s *applicationService) List(ctx context.Context, jobID *uint) (*ApplicationsPage, error) {
	apps, err := s.appRepo.List(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	jobs, err := s.jobRepo.ListOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list job options: %w", err)
	}
	return &ApplicationsPage{Applications: apps, Jobs: jobs}, nil
}

// Export renders applications as an XLSX workbook. The unfiltered export
// carries the full record; the per job export only contact columns.
func (s *applicationService) Export(ctx context.Context, jobID *uint) ([]byte, error) {
	apps, err := s.appRepo.List(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	columns := FullExportColumns
	if jobID != nil {
		columns = JobExportColumns
	}
	return buildWorkbook(columns, apps)
}

// OpenResume returns the stored resume and its recorded content type.
func (s *applicationService) OpenResume(ctx context.Context, key string) (io.ReadCloser, string, error) {
	app, err := s.appRepo.FindByResumeKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrResumeNotFound
		}
		return nil, "", fmt.Errorf("find resume %s: %w", key, err)
	}

	rc, err := s.storage.Open(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", apperrors.ErrResumeNotFound
		}
		return nil, "", fmt.Errorf("open resume %s: %w", key, err)
	}

	contentType := defaultContentType
	if app.ResumeContentType != nil && *app.ResumeContentType != "" {
		contentType = *app.ResumeContentType
	}
	return rc, contentType, nil
}

func validateApplyInput(in ApplyInput) error {
	missing := map[string]string{}
	if in.ApplicantName == "" {
		missing["name"] = "required"
	}
	if in.Email == "" {
		missing["email"] = "required"
	}
	if in.Phone == "" {
		missing["phone"] = "required"
	}
	if len(missing) > 0 {
		return &apperrors.ValidationError{Fields: missing}
	}
	return nil
}

// resumeContentType keeps the declared type unless it is missing or generic.
func resumeContentType(r *ResumeUpload) string {
	declared := strings.TrimSpace(r.ContentType)
	if declared != "" && declared != defaultContentType {
		return declared
	}
	return mimetype.Detect(r.Data).String()
}

// resumeExtension returns the lowercase extension of the original file name,
// falling back to the one implied by the content.
func resumeExtension(r *ResumeUpload) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(r.Filename)))
	if extPattern.MatchString(ext) {
		return ext
	}
	return mimetype.Detect(r.Data).Extension()
}
