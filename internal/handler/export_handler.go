package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barakahq/supportbot/internal/service"
)

type ExportHandler struct {
	exports *service.ExportService
}

func NewExportHandler(exports *service.ExportService) *ExportHandler {
	return &ExportHandler{exports: exports}
}

func (h *ExportHandler) Faqs(c *gin.Context) {
	html, err := h.exports.FaqsHTML(c.Request.Context(), c.Query("department"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *ExportHandler) Transcript(c *gin.Context) {
	limit := uint(0)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 32); err == nil {
			limit = uint(parsed)
		}
	}
	html, err := h.exports.TranscriptHTML(c.Request.Context(), limit)
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
