package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobtrack/tracker-api/internal/api/metrics"
	"github.com/jobtrack/tracker-api/internal/core/domain"
	"github.com/jobtrack/tracker-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// JobHandler handles HTTP requests for job application operations. Every
// route it serves sits behind the Auth middleware.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /jobs.
//
// @Summary      Create a job application
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job application"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.service.Create(c.Request().Context(), toCreateInput(req, userID))
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.Status)).Inc()
	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// List handles GET /jobs.
//
// @Summary      List the caller's job applications
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        page         query     int     false  "Page number (1-based)"  default(1)
// @Param        limit        query     int     false  "Page size, max 100"     default(10)
// @Param        status       query     string  false  "Filter by status"  Enums(Applied, Interview, Rejected, Offer)
// @Param        companyName  query     string  false  "Case-insensitive substring of the company name"
// @Param        jobTitle     query     string  false  "Case-insensitive substring of the job title"
// @Success      200          {object}  listJobsResponse
// @Failure      400          {object}  messageResponse
// @Failure      401          {object}  messageResponse
// @Failure      500          {object}  messageResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	page, limit := defaultPage, defaultLimit
	if err := echo.QueryParamsBinder(c).
		Int("page", &page).
		Int("limit", &limit).
		BindError(); err != nil {
		field := "query"
		var be *echo.BindingError
		if errors.As(err, &be) {
			field = be.Field
		}
		return domain.NewValidationError(fmt.Sprintf("%s must be a positive integer", field))
	}

	result, err := h.service.List(c.Request().Context(), ports.ListJobsInput{
		UserID:      userID,
		Page:        page,
		Limit:       limit,
		Status:      c.QueryParam("status"),
		CompanyName: c.QueryParam("companyName"),
		JobTitle:    c.QueryParam("jobTitle"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Get handles GET /jobs/:id.
//
// @Summary      Get a job application
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	jobID, err := pathJobID(c)
	if err != nil {
		return err
	}

	job, err := h.service.Get(c.Request().Context(), userID, jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Update handles PATCH /jobs/:id. Only the supplied fields change.
//
// @Summary      Partially update a job application
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Job id"
// @Param        body  body      updateJobRequest  true  "Fields to change"
// @Success      200   {object}  jobResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	jobID, err := pathJobID(c)
	if err != nil {
		return err
	}

	var req updateJobRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}

	job, err := h.service.Update(c.Request().Context(), userID, jobID, toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Delete handles DELETE /jobs/:id.
//
// @Summary      Delete a job application
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Job id"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  messageResponse
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Failure      500  {object}  messageResponse
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}
	jobID, err := pathJobID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, jobID); err != nil {
		return err
	}

	metrics.JobsDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Job deleted successfully"})
}
