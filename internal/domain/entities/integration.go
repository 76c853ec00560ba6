package entities

// EmailResult reports the outcome of a digest email delivery.
type EmailResult struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	Error      string   `json:"error,omitempty"`
	Recipients []string `json:"recipients,omitempty"`
	Subject    string   `json:"subject,omitempty"`
}

// CalendarEvent is a created calendar entry for an action item.
type CalendarEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	Link  string `json:"link"`
	Task  string `json:"task"`
}

// FailedEvent records an action item that could not be synced.
type FailedEvent struct {
	Task  string `json:"task"`
	Error string `json:"error"`
}

// CalendarSyncResult reports the outcome of a calendar sync run.
// Per-item failures are isolated; a partial sync still reports Success.
type CalendarSyncResult struct {
	Success       bool            `json:"success"`
	Error         string          `json:"error,omitempty"`
	AuthURL       string          `json:"auth_url,omitempty"`
	CreatedEvents []CalendarEvent `json:"created_events,omitempty"`
	FailedEvents  []FailedEvent   `json:"failed_events,omitempty"`
	TotalCreated  int             `json:"total_created"`
	TotalFailed   int             `json:"total_failed"`
}
