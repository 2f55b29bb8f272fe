package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/andresuchdata/salesops-analytics/internal/export"
	"github.com/andresuchdata/salesops-analytics/internal/service"
	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service *service.ExportService
}

func NewExportHandler(service *service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

func (h *ExportHandler) ListReports(c *gin.Context) {
	respond(c, export.Reports())
}

// Export streams the workbook, or uploads it to object storage when publish=true.
func (h *ExportHandler) Export(c *gin.Context) {
	report := c.Param("report")
	filter := parseFilter(c)

	if publish, _ := strconv.ParseBool(c.Query("publish")); publish {
		published, err := h.service.Publish(c.Request.Context(), report, filter)
		if err != nil {
			fail(c, "failed to publish export", err)
			return
		}
		respond(c, published)
		return
	}

	file, err := h.service.Build(c.Request.Context(), report, filter)
	if err != nil {
		fail(c, "failed to build export", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

func (h *ExportHandler) ListPublished(c *gin.Context) {
	objects, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		fail(c, "failed to list published exports", err)
		return
	}
	respond(c, objects)
}
