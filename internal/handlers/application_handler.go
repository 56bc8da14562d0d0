package handlers

import (
	"net/http"

	"codelance_backend/internal/services"
	"codelance_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	applications := rg.Group("/applications")
	{
		applications.POST("", h.Apply)
		applications.GET("", h.List)
		applications.GET("/:id", h.Get)
		applications.POST("/:id/approve", h.Approve)
		applications.POST("/:id/reject", h.Reject)
		applications.DELETE("/:id", h.Delete)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)
	application, err := h.applicationService.Apply(db, actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	applications, err := h.applicationService.List(db, actor, c.Query("project_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	application, err := h.applicationService.Get(db, actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Approve(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	application, err := h.applicationService.Approve(db, actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Reject(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	application, err := h.applicationService.Reject(db, actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	if err := h.applicationService.Delete(db, actor, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
