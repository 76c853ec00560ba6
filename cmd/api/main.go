package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetinglab/meeting-insights/pkg/validator"

	"github.com/meetinglab/meeting-insights/internal/adapter/handler"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/email"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/external/calendar"
	asmtranscription "github.com/meetinglab/meeting-insights/internal/infrastructure/external/transcription"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/report"
	"github.com/meetinglab/meeting-insights/internal/usecase/analytics"
	"github.com/meetinglab/meeting-insights/internal/usecase/summary"
	"github.com/meetinglab/meeting-insights/internal/usecase/transcription"
	"github.com/meetinglab/meeting-insights/pkg/config"
	"github.com/meetinglab/meeting-insights/pkg/nlp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize NLP client
	log.Println("🧠 Connecting to NLP service...")
	nlpClient := nlp.NewClient(&cfg.NLP)

	// Initialize transcription
	log.Println("🎙️  Initializing transcription provider...")
	provider := asmtranscription.NewAssemblyAIProvider(&cfg.AssemblyAI, logger)
	transcriber := transcription.NewService(provider, logger)

	// Initialize analysis services
	log.Println("📊 Initializing analysis services...")
	summarizer := summary.NewService(nlpClient, logger)
	extractor := analytics.NewExtractor(nlpClient, nlpClient, logger)
	sentimentAnalyzer := analytics.NewSentimentAnalyzer(nlpClient, logger)
	participationAnalyzer := analytics.NewParticipationAnalyzer(nlpClient, logger)

	// Initialize integrations
	log.Println("🔌 Initializing integrations...")
	sender := email.NewSender(&cfg.SMTP, logger)
	googleCalendar := calendar.NewGoogleCalendar(&cfg.Google, logger)
	exporter := report.NewExcelExporter(cfg.Report.OutputDir, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeeting(transcriber, summarizer, extractor, sentimentAnalyzer, participationAnalyzer, logger)
	integrationHandler := handler.NewIntegration(sender, googleCalendar, exporter, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, integrationHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
