package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"travelmate/database"
	"travelmate/logging"
	"travelmate/services"
)

type ReportResponse struct {
	ReportID string `json:"report_id"`
	PDFURL   string `json:"pdf_url"`
	Message  string `json:"message"`
}

// CreateBudgetReport prices a trip like BudgetCalculator, renders it as a PDF
// and stores it for download.
func (h *Handler) CreateBudgetReport(c *gin.Context) {
	req, trip, ok := h.bindTrip(c)
	if !ok {
		return
	}
	log := logging.FromContext(c.Request.Context(), h.log)

	pdfBytes, err := services.BudgetReportPDF(services.BudgetReport{
		TravelerName: req.TravelerName,
		Trip:         trip,
		GeneratedAt:  time.Now(),
	})
	if err != nil {
		log.Error("PDF generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	summary, err := json.Marshal(trip)
	if err != nil {
		log.Error("failed to encode budget summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode budget summary"})
		return
	}
	id := uuid.New().String()
	if err := h.reports.SaveReport(c.Request.Context(), &database.Report{
		ID:           id,
		Destination:  trip.Destination,
		BudgetLevel:  trip.BudgetLevel,
		Duration:     trip.Duration,
		Travelers:    trip.Travelers,
		TravelerName: req.TravelerName,
		SummaryJSON:  string(summary),
		PDFData:      pdfBytes,
	}); err != nil {
		log.Error("failed to save budget report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save generated PDF"})
		return
	}

	log.Info("budget report generated", zap.String("report_id", id), zap.Int("bytes", len(pdfBytes)))

	c.JSON(http.StatusOK, ReportResponse{
		ReportID: id,
		PDFURL:   "/api/budget-report/" + id,
		Message:  "PDF generated successfully",
	})
}
