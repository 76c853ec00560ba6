package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meetinglab/meeting-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	meetingHandler     *Meeting
	integrationHandler *Integration
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, integrationHandler *Integration) *Router {
	return &Router{
		cfg:                cfg,
		meetingHandler:     meetingHandler,
		integrationHandler: integrationHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
	rt.setupIntegrationRoutes(v1)
}

// setupMeetingRoutes configures transcription and analysis routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	if rt.meetingHandler != nil {
		meetings.POST("/transcribe", rt.meetingHandler.Transcribe)
		meetings.POST("/summarize", rt.meetingHandler.Summarize)
		meetings.POST("/actions", rt.meetingHandler.Actions)
		meetings.POST("/sentiment", rt.meetingHandler.Sentiment)
		meetings.POST("/participation", rt.meetingHandler.Participation)
		meetings.POST("/process", rt.meetingHandler.Process)
	} else {
		meetings.POST("/transcribe", rt.notImplemented)
		meetings.POST("/summarize", rt.notImplemented)
		meetings.POST("/actions", rt.notImplemented)
		meetings.POST("/sentiment", rt.notImplemented)
		meetings.POST("/participation", rt.notImplemented)
		meetings.POST("/process", rt.notImplemented)
	}
}

// setupIntegrationRoutes configures email, calendar, and report routes
func (rt *Router) setupIntegrationRoutes(g *echo.Group) {
	integrations := g.Group("/integrations")

	if rt.integrationHandler != nil {
		integrations.POST("/email", rt.integrationHandler.SendEmail)
		integrations.GET("/calendar/auth", rt.integrationHandler.CalendarAuth)
		integrations.GET("/calendar/callback", rt.integrationHandler.CalendarCallback)
		integrations.GET("/calendar/status", rt.integrationHandler.CalendarStatus)
		integrations.POST("/calendar/sync", rt.integrationHandler.CalendarSync)
		integrations.POST("/send-and-sync", rt.integrationHandler.SendAndSync)
		integrations.POST("/report", rt.integrationHandler.ExportReport)
	} else {
		integrations.POST("/email", rt.notImplemented)
		integrations.GET("/calendar/auth", rt.notImplemented)
		integrations.GET("/calendar/callback", rt.notImplemented)
		integrations.GET("/calendar/status", rt.notImplemented)
		integrations.POST("/calendar/sync", rt.notImplemented)
		integrations.POST("/send-and-sync", rt.notImplemented)
		integrations.POST("/report", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":  "This endpoint is not yet implemented",
		"path":   c.Request().URL.Path,
		"method": c.Request().Method,
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
