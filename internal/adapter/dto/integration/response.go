package integration

import "github.com/meetinglab/meeting-insights/internal/domain/entities"

// CalendarAuthResponse carries the OAuth consent URL.
type CalendarAuthResponse struct {
	AuthURL      string `json:"auth_url"`
	Instructions string `json:"instructions"`
}

// CalendarStatusResponse reports integration readiness.
type CalendarStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	AuthURL       string `json:"auth_url,omitempty"`
	Status        string `json:"status"`
}

// SendAndSyncResponse aggregates the email and calendar outcomes.
type SendAndSyncResponse struct {
	Email          *entities.EmailResult        `json:"email"`
	Calendar       *entities.CalendarSyncResult `json:"calendar,omitempty"`
	OverallSuccess bool                         `json:"overall_success"`
}

// ReportResponse carries the path of an exported workbook.
type ReportResponse struct {
	Path string `json:"path"`
}
