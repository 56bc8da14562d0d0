package handlers

import (
	"net/http"

	"codelance_backend/internal/middleware"
	"codelance_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/stats", h.Stats)
	}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	db := h.GetDB(c)
	stats, err := h.adminService.Stats(db, actor)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
