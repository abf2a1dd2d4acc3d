package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelmate/database"
)

func (h *Handler) DownloadBudgetReport(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing report ID"})
		return
	}

	report, err := h.reports.GetReport(c.Request.Context(), id)
	if errors.Is(err, database.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(report.PDFData) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "PDF has not been generated for this report"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=travelmate-budget.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", report.PDFData)
}

func (h *Handler) Health(c *gin.Context) {
	dbStatus := "ok"
	if err := h.reports.Ping(c.Request.Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "TravelMate API",
		"database": dbStatus,
	})
}
