package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrdashboard/internal/errors"
	"hrdashboard/internal/logger"
	"hrdashboard/internal/model"
	"hrdashboard/internal/service"
)

// JobHandler handles job posting management.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// JobRequest represents the job form. Every field is overwritten on edit.
type JobRequest struct {
	Title       string `form:"title" json:"title" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Location    string `form:"location" json:"location" validate:"required"`
	JobType     string `form:"job_type" json:"job_type" validate:"required"`
}

func (r JobRequest) fields() model.JobFields {
	return model.JobFields{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		JobType:     r.JobType,
	}
}

// List godoc
// @Summary List jobs, most recent first
// @Tags jobs
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, jobs)
	}
	return c.Render(http.StatusOK, "jobs.html", page(c, "Jobs", jobs))
}

// Create godoc
// @Summary Post a job
// @Tags jobs
// @Accept x-www-form-urlencoded
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param location formData string true "Location"
// @Param job_type formData string true "Department or type"
// @Success 302 {string} string "Redirect to /jobs"
// @Failure 400 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return badRequest()
	}

	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	ctx := c.Request().Context()
	job, err := h.jobService.Create(ctx, req.fields())
	if err != nil {
		return httpError(err)
	}
	logger.FromContext(ctx).Info("job created", "job_id", job.ID)

	return c.Redirect(http.StatusFound, "/jobs")
}

// EditForm godoc
// @Summary Job edit form
// @Tags jobs
// @Produce html
// @Param id path int true "Job ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} errors.ErrorResponse
// @Router /edit-job/{id} [get]
func (h *JobHandler) EditForm(c echo.Context) error {
	id, err := parseID(c, "id", errors.ErrJobNotFound)
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.Render(http.StatusOK, "edit_job.html", page(c, "Edit job", job))
}

// Update godoc
// @Summary Overwrite a job
// @Tags jobs
// @Accept x-www-form-urlencoded
// @Param id path int true "Job ID"
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param location formData string true "Location"
// @Param job_type formData string true "Department or type"
// @Success 302 {string} string "Redirect to /jobs"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /edit-job/{id} [post]
func (h *JobHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id", errors.ErrJobNotFound)
	if err != nil {
		return err
	}

	var req JobRequest
	if err := c.Bind(&req); err != nil {
		return badRequest()
	}

	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	ctx := c.Request().Context()
	if err := h.jobService.Update(ctx, id, req.fields()); err != nil {
		return httpError(err)
	}
	logger.FromContext(ctx).Info("job updated", "job_id", id)

	return c.Redirect(http.StatusFound, "/jobs")
}

// Delete godoc
// @Summary Delete a job
// @Description Applications referencing the job are kept.
// @Tags jobs
// @Param id path int true "Job ID"
// @Success 302 {string} string "Redirect to /jobs"
// @Router /delete-job/{id} [get]
func (h *JobHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id", errors.ErrJobNotFound)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if err := h.jobService.Delete(ctx, id); err != nil {
		return httpError(err)
	}
	logger.FromContext(ctx).Info("job deleted", "job_id", id)

	return c.Redirect(http.StatusFound, "/jobs")
}
