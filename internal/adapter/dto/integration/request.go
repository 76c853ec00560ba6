package integration

import "github.com/meetinglab/meeting-insights/internal/domain/entities"

// MeetingData is the analysis payload the integrations operate on.
type MeetingData struct {
	Summary     string                `json:"summary"`
	ActionItems []entities.ActionItem `json:"action_items"`
	MeetingMood string                `json:"meeting_mood,omitempty"`
	OverallTone string                `json:"overall_tone,omitempty"`
}

// EmailConfig addresses a digest delivery.
type EmailConfig struct {
	Recipients   []string `json:"recipients" validate:"required,min=1,dive,email"`
	Subject      string   `json:"subject,omitempty"`
	MeetingTitle string   `json:"meeting_title,omitempty"`
}

// EmailRequest sends a meeting digest via email.
type EmailRequest struct {
	MeetingData MeetingData `json:"meeting_data" validate:"required"`
	EmailConfig EmailConfig `json:"email_config" validate:"required"`
}

// CalendarSyncRequest creates calendar events for action items.
type CalendarSyncRequest struct {
	ActionItems  []entities.ActionItem `json:"action_items" validate:"required,min=1"`
	MeetingTitle string                `json:"meeting_title,omitempty"`
}

// SendAndSyncRequest sends the digest and syncs the calendar in one call.
type SendAndSyncRequest struct {
	MeetingData  MeetingData `json:"meeting_data" validate:"required"`
	EmailConfig  EmailConfig `json:"email_config" validate:"required"`
	SyncCalendar *bool       `json:"sync_calendar,omitempty"`
	MeetingTitle string      `json:"meeting_title,omitempty"`
}

// ShouldSyncCalendar reports whether calendar sync was requested.
// Defaults to true when the field is omitted.
func (r *SendAndSyncRequest) ShouldSyncCalendar() bool {
	return r.SyncCalendar == nil || *r.SyncCalendar
}

// ReportRequest exports a meeting report workbook.
type ReportRequest struct {
	MeetingTitle  string                        `json:"meeting_title,omitempty"`
	Summary       string                        `json:"summary"`
	ActionItems   []entities.ActionItem         `json:"action_items"`
	Sentiment     *entities.SentimentReport     `json:"sentiment,omitempty"`
	Participation *entities.ParticipationReport `json:"participation,omitempty"`
}
