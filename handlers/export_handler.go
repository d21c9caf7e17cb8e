package handlers

import (
	"bytes"
	"net/http"

	"hot100-service/helper"
	"hot100-service/services"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	exportService services.ExportService
	Helper        *helper.HTTPHelper
}

func NewExportHandler(exportService services.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportHTML serves the chart as the search-links HTML page. The page is
// rendered to a buffer first so an export error can still produce a JSON
// error response.
func (h *ExportHandler) ExportHTML(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportService.WriteHTML(&buf); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
