package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/errors"
	"github.com/meetinglab/meeting-insights/internal/adapter/dto/integration"
	"github.com/meetinglab/meeting-insights/internal/domain/entities"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/email"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/external/calendar"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/report"
)

// Integration handles email, calendar, and report endpoints.
type Integration struct {
	sender   *email.Sender
	calendar *calendar.GoogleCalendar
	exporter *report.ExcelExporter
	logger   *zap.Logger
}

// NewIntegration creates the integration handler.
func NewIntegration(sender *email.Sender, cal *calendar.GoogleCalendar, exporter *report.ExcelExporter, logger *zap.Logger) *Integration {
	return &Integration{
		sender:   sender,
		calendar: cal,
		exporter: exporter,
		logger:   logger,
	}
}

// SendEmail sends a meeting digest to the configured recipients.
// POST /v1/integrations/email
func (h *Integration) SendEmail(c echo.Context) error {
	var req integration.EmailRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	result := h.sendDigest(&req.MeetingData, &req.EmailConfig)
	if !result.Success {
		return HandleError(h.logger, c, errors.ErrEmailFailed(stdErrors.New(result.Error)))
	}
	return HandleSuccess(h.logger, c, result)
}

// CalendarAuth returns the Google OAuth consent URL.
// GET /v1/integrations/calendar/auth
func (h *Integration) CalendarAuth(c echo.Context) error {
	return HandleSuccess(h.logger, c, integration.CalendarAuthResponse{
		AuthURL:      h.calendar.AuthURL(),
		Instructions: "Visit this URL to authorize Google Calendar access",
	})
}

// CalendarCallback completes the OAuth flow with the authorization code.
// GET /v1/integrations/calendar/callback
func (h *Integration) CalendarCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("authorization code is required"))
	}
	if err := h.calendar.CompleteAuth(c.Request().Context(), code); err != nil {
		return HandleError(h.logger, c, errors.ErrCalendarSyncFailed(err))
	}
	return HandleSuccess(h.logger, c, map[string]string{
		"message": "Google Calendar authorization completed successfully",
	})
}

// CalendarStatus reports whether calendar sync is ready.
// GET /v1/integrations/calendar/status
func (h *Integration) CalendarStatus(c echo.Context) error {
	resp := integration.CalendarStatusResponse{Authenticated: h.calendar.IsAuthenticated()}
	if resp.Authenticated {
		resp.Status = "Ready to sync events"
	} else {
		resp.Status = "Authentication required"
		resp.AuthURL = h.calendar.AuthURL()
	}
	return HandleSuccess(h.logger, c, resp)
}

// CalendarSync creates calendar events for action items.
// POST /v1/integrations/calendar/sync
func (h *Integration) CalendarSync(c echo.Context) error {
	var req integration.CalendarSyncRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	title := req.MeetingTitle
	if title == "" {
		title = "Meeting Follow-up"
	}

	result := h.calendar.CreateEvents(c.Request().Context(), req.ActionItems, title)
	return HandleSuccess(h.logger, c, result)
}

// SendAndSync sends the digest and syncs the calendar in one call.
// POST /v1/integrations/send-and-sync
func (h *Integration) SendAndSync(c echo.Context) error {
	var req integration.SendAndSyncRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, validationError(err))
	}

	title := req.MeetingTitle
	if title == "" {
		title = "Team Meeting"
	}

	cfg := req.EmailConfig
	cfg.MeetingTitle = title

	resp := integration.SendAndSyncResponse{
		Email: h.sendDigest(&req.MeetingData, &cfg),
	}

	if req.ShouldSyncCalendar() {
		resp.Calendar = h.calendar.CreateEvents(c.Request().Context(), req.MeetingData.ActionItems, title)
	}

	resp.OverallSuccess = resp.Email.Success &&
		(!req.ShouldSyncCalendar() || resp.Calendar.Success)

	return HandleSuccess(h.logger, c, resp)
}

// ExportReport writes a meeting report workbook and returns its path.
// POST /v1/integrations/report
func (h *Integration) ExportReport(c echo.Context) error {
	var req integration.ReportRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	path, err := h.exporter.Export(report.ReportData{
		MeetingTitle:  req.MeetingTitle,
		Summary:       req.Summary,
		ActionItems:   req.ActionItems,
		Sentiment:     req.Sentiment,
		Participation: req.Participation,
	})
	if err != nil {
		return HandleError(h.logger, c, errors.ErrReportExportFailed(err))
	}

	return HandleSuccess(h.logger, c, integration.ReportResponse{Path: path})
}

func (h *Integration) sendDigest(data *integration.MeetingData, cfg *integration.EmailConfig) *entities.EmailResult {
	subject := cfg.Subject
	if subject == "" {
		subject = "Meeting Digest"
	}
	return h.sender.SendDigest(cfg.Recipients, subject, email.DigestData{
		MeetingTitle: cfg.MeetingTitle,
		Summary:      data.Summary,
		ActionItems:  data.ActionItems,
		MeetingMood:  data.MeetingMood,
		OverallTone:  data.OverallTone,
	})
}
