package report

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medidash/clinic-api/internal/handler"
	"github.com/medidash/clinic-api/internal/service/report"
)

type Handler struct {
	service report.ReportService
}

func NewHandler(service report.ReportService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	reports := r.Group("/reports")
	{
		reports.GET("/patients.csv", h.ExportPatients)
		reports.GET("/appointments.csv", h.ExportAppointments)
		reports.GET("/pdf", h.ExportPDF)
	}
}

func (h *Handler) ExportPatients(c *gin.Context) {
	download(c, h.service.ExportPatients)
}

func (h *Handler) ExportAppointments(c *gin.Context) {
	download(c, h.service.ExportAppointments)
}

// ExportPDF has no implementation behind it and always answers with the
// integration notice.
func (h *Handler) ExportPDF(c *gin.Context) {
	_, err := h.service.ExportPDF(c.Request.Context())
	c.JSON(http.StatusNotImplemented, handler.NewErrorResponse(err.Error()))
}

// download streams an export document as a file attachment.
func download(c *gin.Context, export func(ctx context.Context) (*report.Export, error)) {
	doc, err := export(c.Request.Context())
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.Filename+`"`)
	c.Data(http.StatusOK, doc.ContentType, []byte(doc.Body))
}
