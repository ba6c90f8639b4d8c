package handlers

import (
	"net/http"

	"workhubb_backend/internal/dto"
	"workhubb_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	*BaseHandler
	experienceService *services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, experienceService *services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{
		BaseHandler:       base,
		experienceService: experienceService,
	}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	experiences, err := h.experienceService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) GetByID(c *gin.Context) {
	experience, err := h.experienceService.GetByID(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) ListByUser(c *gin.Context) {
	experiences, err := h.experienceService.ListByUser(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req dto.CreateExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	experience, err := h.experienceService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req dto.UpdateExperienceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	experience, err := h.experienceService.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceService.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
