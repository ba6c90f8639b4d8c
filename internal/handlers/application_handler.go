package handlers

import (
	"net/http"

	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) List(c *gin.Context) {
	applications, err := h.applicationService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) ListWithDetails(c *gin.Context) {
	details, err := h.applicationService.ListWithDetails()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *ApplicationHandler) ListByUser(c *gin.Context) {
	applications, err := h.applicationService.ListByUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applications)
}

// ListByJob returns each application paired with its applicant; a row
// is never dropped because the user side failed to resolve.
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	applicants, err := h.applicationService.ListByJob(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, applicants)
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

// Check answers "has this user applied to this job". Both query
// parameters are required; absence of a matching row is a normal
// {applied: false}, not an error.
func (h *ApplicationHandler) Check(c *gin.Context) {
	var query dto.CheckApplicationQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	applied, err := h.applicationService.HasApplied(query.UserID, query.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CheckApplicationResponse{Applied: applied})
}
