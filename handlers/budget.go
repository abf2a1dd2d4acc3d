package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"travelmate/services"
)

const (
	defaultDuration  = 7
	defaultTravelers = 1
)

type BudgetRequest struct {
	Destination  string `json:"destination"`
	BudgetLevel  string `json:"budgetLevel"`
	Duration     *int   `json:"duration"`
	Travelers    *int   `json:"travelers"`
	SessionID    string `json:"sessionId"`
	TravelerName string `json:"travelerName"`
}

// tripRequest applies defaults and validates. The returned message is the
// client-facing error.
func (r BudgetRequest) tripRequest() (services.TripRequest, string) {
	tr := services.TripRequest{
		Destination: r.Destination,
		BudgetLevel: r.BudgetLevel,
		Duration:    defaultDuration,
		Travelers:   defaultTravelers,
	}
	if strings.TrimSpace(r.Destination) == "" {
		return tr, "No destination provided"
	}
	if tr.BudgetLevel == "" {
		tr.BudgetLevel = services.LevelMidRange
	}
	if !services.ValidBudgetLevel(tr.BudgetLevel) {
		return tr, "Invalid budget level: use budget, mid-range or luxury"
	}
	if r.Duration != nil {
		tr.Duration = *r.Duration
	}
	if r.Travelers != nil {
		tr.Travelers = *r.Travelers
	}
	if tr.Duration < 1 || tr.Travelers < 1 {
		return tr, "Duration and travelers must be at least 1"
	}
	return tr, ""
}

func (h *Handler) bindTrip(c *gin.Context) (*BudgetRequest, *services.TripBudget, bool) {
	var req BudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return nil, nil, false
	}
	tr, msg := req.tripRequest()
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return nil, nil, false
	}

	trip, err := h.assistant.PlanTrip(c.Request.Context(), tr)
	if errors.Is(err, services.ErrUnknownBudgetLevel) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return nil, nil, false
	}
	return &req, trip, true
}

func (h *Handler) BudgetCalculator(c *gin.Context) {
	_, trip, ok := h.bindTrip(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, trip)
}
