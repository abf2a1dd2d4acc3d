package handlers

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelmate/database"
	"travelmate/logging"
	"travelmate/services"
)

type Handler struct {
	assistant *services.Assistant
	reports   database.ReportStore
	log       *zap.Logger
}

func New(assistant *services.Assistant, reports database.ReportStore, log *zap.Logger) *Handler {
	return &Handler{assistant: assistant, reports: reports, log: log}
}

// NewRouter builds the engine with logging, recovery, CORS and the /api routes.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(corsHeaders(), logging.Middleware(log), logging.Recovery(log))

	// Preflight handling. The frontend may be served from anywhere.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"POST", "GET", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition", logging.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/chat", h.Chat)
		api.POST("/destination-details", h.DestinationDetails)
		api.POST("/budget-calculator", h.BudgetCalculator)
		api.POST("/budget-report", h.CreateBudgetReport)
		api.GET("/budget-report/:id", h.DownloadBudgetReport)
	}
	return r
}

// corsHeaders sets the permissive CORS headers on every response, including
// requests that carry no Origin header.
func corsHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		c.Next()
	}
}
