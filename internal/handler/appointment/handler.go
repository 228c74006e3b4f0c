package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medidash/clinic-api/internal/handler"
	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/service/appointment"
)

type Handler struct {
	service appointment.AppointmentService
}

func NewHandler(service appointment.AppointmentService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the appointment surface. There is deliberately no
// delete: appointments only ever change status.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	appointments := r.Group("/appointments")
	{
		appointments.GET("", h.ListAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments := h.service.ListAppointments(c.Request.Context())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	a, err := h.service.CreateAppointment(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(a))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req model.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
