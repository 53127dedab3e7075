package handler

import (
	stderrors "errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"hrdashboard/internal/errors"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/model"
	"hrdashboard/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFilename  = "applications.xlsx"
	resumeField     = "resume"
)

// ApplicationHandler handles public applications and their staff review.
type ApplicationHandler struct {
	appService     service.ApplicationService
	jobService     service.JobService
	maxResumeBytes int64
	resumeRequired bool
}

// NewApplicationHandler creates a new application handler.
func NewApplicationHandler(
	appService service.ApplicationService,
	jobService service.JobService,
	opts service.ApplicationOptions,
) *ApplicationHandler {
	return &ApplicationHandler{
		appService:     appService,
		jobService:     jobService,
		maxResumeBytes: opts.MaxResumeBytes,
		resumeRequired: opts.ResumeRequired,
	}
}

// ApplyRequest represents the public application form.
type ApplyRequest struct {
	Name  string `form:"name" json:"name" validate:"required"`
	Email string `form:"email" json:"email" validate:"required,email"`
	Phone string `form:"phone" json:"phone" validate:"required"`
}

// ApplyResponse is returned to JSON clients after a submission.
type ApplyResponse struct {
	ID        uint    `json:"id"`
	JobID     uint    `json:"job_id"`
	ResumeURL *string `json:"resume_url"`
	Message   string  `json:"message"`
}

type applyView struct {
	Job            *model.Job
	Submitted      bool
	ResumeRequired bool
}

type applicationsView struct {
	*service.ApplicationsPage
	Selected uint
}

// ApplyForm godoc
// @Summary Public job page with the application form
// @Tags applications
// @Produce html
// @Param job_id path int true "Job ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} errors.ErrorResponse
// @Router /apply/{job_id} [get]
func (h *ApplicationHandler) ApplyForm(c echo.Context) error {
	jobID, err := parseID(c, "job_id", errors.ErrJobNotFound)
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.Request().Context(), jobID)
	if err != nil {
		return httpError(err)
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, job)
	}
	return c.Render(http.StatusOK, "apply.html", page(c, job.Title, applyView{Job: job, ResumeRequired: h.resumeRequired}))
}

// Apply godoc
// @Summary Submit an application
// @Description Public endpoint. The resume file is optional unless the deployment requires it.
// @Tags applications
// @Accept multipart/form-data
// @Produce html
// @Param job_id path int true "Job ID"
// @Param name formData string true "Applicant name"
// @Param email formData string true "Applicant email"
// @Param phone formData string true "Applicant phone"
// @Param resume formData file false "Resume"
// @Success 201 {object} ApplyResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 413 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /apply/{job_id} [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	jobID, err := parseID(c, "job_id", errors.ErrJobNotFound)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	job, err := h.jobService.Get(ctx, jobID)
	if err != nil {
		return httpError(err)
	}

	var req ApplyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest()
	}

	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	resume, err := h.readResume(c)
	if err != nil {
		return httpError(err)
	}

	app, err := h.appService.Apply(ctx, job.ID, service.ApplyInput{
		ApplicantName: req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
	}, resume)
	if err != nil {
		return httpError(err)
	}
	logger.FromContext(ctx).Info("application received", "application_id", app.ID, "job_id", job.ID, "resume", app.HasResume())

	if wantsJSON(c) {
		return c.JSON(http.StatusCreated, ApplyResponse{
			ID:        app.ID,
			JobID:     app.JobID,
			ResumeURL: app.ResumeURL,
			Message:   "Application submitted",
		})
	}
	return c.Render(http.StatusCreated, "apply.html", page(c, job.Title, applyView{Job: job, Submitted: true}))
}

// readResume returns the uploaded resume, or nil when none was sent.
func (h *ApplicationHandler) readResume(c echo.Context) (*service.ResumeUpload, error) {
	fh, err := c.FormFile(resumeField)
	if err != nil {
		if stderrors.Is(err, http.ErrMissingFile) || stderrors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("read resume: %w", err)
	}
	if h.maxResumeBytes > 0 && fh.Size > h.maxResumeBytes {
		return nil, errors.ErrResumeTooLarge
	}
	return readUpload(fh, h.maxResumeBytes)
}

func readUpload(fh *multipart.FileHeader, limit int64) (*service.ResumeUpload, error) {
	file, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open resume: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	if limit > 0 {
		r = io.LimitReader(file, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read resume: %w", err)
	}

	return &service.ResumeUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Data:        data,
	}, nil
}

// List godoc
// @Summary List applications
// @Tags applications
// @Produce html
// @Param job_id query int false "Only applications for this job"
// @Success 200 {string} string "HTML page"
// @Failure 400 {object} errors.ErrorResponse
// @Router /applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	jobID, err := queryJobID(c)
	if err != nil {
		return httpError(err)
	}

	result, err := h.appService.List(c.Request().Context(), jobID)
	if err != nil {
		return httpError(err)
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, result)
	}

	view := applicationsView{ApplicationsPage: result}
	if jobID != nil {
		view.Selected = *jobID
	}
	return c.Render(http.StatusOK, "applications.html", page(c, "Applications", view))
}

// ExportAll godoc
// @Summary Download every application as a spreadsheet
// @Tags applications
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "applications.xlsx"
// @Router /download-excel [get]
func (h *ApplicationHandler) ExportAll(c echo.Context) error {
	return h.export(c, nil)
}

// ExportJob godoc
// @Summary Download the applications of one job as a spreadsheet
// @Tags applications
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param job_id path int true "Job ID"
// @Success 200 {file} file "applications.xlsx"
// @Failure 404 {object} errors.ErrorResponse
// @Router /export-applications/{job_id} [get]
func (h *ApplicationHandler) ExportJob(c echo.Context) error {
	jobID, err := parseID(c, "job_id", errors.ErrJobNotFound)
	if err != nil {
		return err
	}
	return h.export(c, &jobID)
}

func (h *ApplicationHandler) export(c echo.Context, jobID *uint) error {
	data, err := h.appService.Export(c.Request().Context(), jobID)
	if err != nil {
		return httpError(err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", exportFilename))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

// Resume godoc
// @Summary Serve a locally stored resume
// @Tags applications
// @Param filename path string true "Stored resume name"
// @Success 200 {file} file "Resume with its uploaded content type"
// @Failure 404 {object} errors.ErrorResponse
// @Router /uploads/resumes/{filename} [get]
func (h *ApplicationHandler) Resume(c echo.Context) error {
	rc, contentType, err := h.appService.OpenResume(c.Request().Context(), c.Param("filename"))
	if err != nil {
		return httpError(err)
	}
	defer rc.Close()

	return c.Stream(http.StatusOK, contentType, rc)
}

func queryJobID(c echo.Context) (*uint, error) {
	raw := c.QueryParam("job_id")
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, errors.NewValidationError("job_id", "must be a job id")
	}
	v := uint(id)
	return &v, nil
}
