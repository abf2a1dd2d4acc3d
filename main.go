package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"travelmate/config"
	"travelmate/database"
	"travelmate/handlers"
	"travelmate/logging"
	"travelmate/services"
	"travelmate/sessions"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reports
	var reports database.ReportStore
	if cfg.DatabaseDSN != "" {
		pg, err := database.OpenPostgres(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			logger.Fatal("database", zap.Error(err))
		}
		defer pg.Close()
		reports = pg
	} else {
		logger.Info("no database configured, budget reports kept in memory")
		reports = database.NewMemory()
	}

	rnd := services.NewTimeRand()
	mock := services.NewMockDataGenerator(rnd, time.Now)

	// Language model
	var llm services.TextGenerator
	if cfg.UseMockLLM {
		logger.Warn("using mock language model")
		llm = services.NewMockLLM(mock)
	} else {
		gemini, err := services.NewGeminiClient(ctx, services.GeminiConfig{
			APIKey:          cfg.GeminiAPIKey,
			Model:           cfg.GeminiModel,
			Temperature:     0.7,
			MaxOutputTokens: 2048,
		}, logger)
		if err != nil {
			logger.Fatal("gemini", zap.Error(err))
		}
		defer gemini.Close()
		llm = gemini
	}

	hotels := services.NewTravelAdvisorClient(services.TravelAdvisorConfig{
		APIKey:   cfg.RapidAPIKey,
		BaseURL:  cfg.TravelAdvisorBaseURL,
		CacheTTL: cfg.HotelCacheTTL,
	}, logger)

	assistant := services.NewAssistant(llm, hotels, sessions.NewMemoryStore(),
		services.NewBudgetEngine(rnd), mock, logger)

	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handlers.NewRouter(handlers.New(assistant, reports, logger), logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("TravelMate backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
