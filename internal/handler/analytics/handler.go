package analytics

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medidash/clinic-api/internal/handler"
	"github.com/medidash/clinic-api/internal/service/analytics"
)

type Handler struct {
	service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/dashboard", h.Dashboard)
	r.GET("/analytics", h.Analytics)
}

func (h *Handler) Dashboard(c *gin.Context) {
	summary := h.service.Dashboard(c.Request.Context(), time.Now())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func (h *Handler) Analytics(c *gin.Context) {
	overview := h.service.Analytics(c.Request.Context())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(overview))
}
