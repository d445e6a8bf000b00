package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"

	"requisiciones/internal/app/workflow"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ExportCSV genera el reporte de todas las requisiciones
// @Summary Exportar requisiciones a CSV
// @Description Descarga todas las requisiciones con sus materiales aplanados; el snapshot se archiva en MinIO si está configurado
// @Tags Reportes
// @Produce text/csv
// @Security BearerAuth
// @Success 200 {string} string "CSV"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/requisiciones/export [get]
func (h *APIHandler) ExportCSV(c *gin.Context) {
	reqs, err := h.Repository.GetAllForExport()
	if err != nil {
		logrus.Error("Error exporting requisitions: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Error al exportar requisiciones")
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	// ';' para que Excel con separador de lista ';' abra bien el archivo
	writer.Comma = ';'

	if err := writer.Write(workflow.EncabezadosExport()); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Error al generar el CSV")
		return
	}
	for _, r := range reqs {
		if err := writer.Write(workflow.FilaExport(r)); err != nil {
			h.errorResponse(c, http.StatusInternalServerError, "Error al generar el CSV")
			return
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Error al generar el CSV")
		return
	}

	// Archivar el snapshot si MinIO está configurado; el export no falla por esto
	if h.MinIOClient != nil {
		if _, err := h.MinIOClient.UploadReport(c.Request.Context(), buf.Bytes()); err != nil {
			logrus.Warnf("Failed to archive CSV report: %v", err)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="requisiciones_todas.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
