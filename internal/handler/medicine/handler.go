package medicine

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medidash/clinic-api/internal/handler"
	"github.com/medidash/clinic-api/internal/model"
	"github.com/medidash/clinic-api/internal/service/medicine"
)

type Handler struct {
	service medicine.MedicineService
}

func NewHandler(service medicine.MedicineService) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the inventory surface: additions and stock bumps
// only, no delete.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	medicines := r.Group("/medicines")
	{
		medicines.GET("", h.ListMedicines)
		medicines.POST("", h.CreateMedicine)
		medicines.POST("/:id/increment", h.IncrementStock)
	}
}

func (h *Handler) ListMedicines(c *gin.Context) {
	medicines := h.service.ListMedicines(c.Request.Context())
	c.JSON(http.StatusOK, handler.NewSuccessResponse(medicines))
}

func (h *Handler) CreateMedicine(c *gin.Context) {
	var req model.CreateMedicineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	m, err := h.service.CreateMedicine(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(m))
}

func (h *Handler) IncrementStock(c *gin.Context) {
	if err := h.service.IncrementStock(c.Request.Context(), c.Param("id")); err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}
