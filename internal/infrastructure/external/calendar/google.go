package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
	"github.com/meetinglab/meeting-insights/pkg/config"
)

const calendarScope = "https://www.googleapis.com/auth/calendar"

// GoogleCalendar creates calendar events for extracted action items. OAuth
// tokens are cached on disk so authorization survives restarts.
type GoogleCalendar struct {
	oauth     *oauth2.Config
	tokenFile string
	logger    *zap.Logger
	now       func() time.Time
}

// NewGoogleCalendar creates a calendar integration from config.
func NewGoogleCalendar(cfg *config.GoogleConfig, logger *zap.Logger) *GoogleCalendar {
	return &GoogleCalendar{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{calendarScope},
			Endpoint:     googleoauth.Endpoint,
		},
		tokenFile: cfg.TokenFile,
		logger:    logger,
		now:       time.Now,
	}
}

// AuthURL returns the Google OAuth consent URL.
func (g *GoogleCalendar) AuthURL() string {
	return g.oauth.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// CompleteAuth exchanges the authorization code and caches the token.
func (g *GoogleCalendar) CompleteAuth(ctx context.Context, code string) error {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	if err := g.saveToken(token); err != nil {
		return err
	}
	if g.logger != nil {
		g.logger.Info("google calendar authorization completed")
	}
	return nil
}

// IsAuthenticated reports whether a usable cached token exists.
func (g *GoogleCalendar) IsAuthenticated() bool {
	token, err := g.loadToken()
	if err != nil {
		return false
	}
	return token.Valid() || token.RefreshToken != ""
}

// CreateEvents creates one calendar event per action item on the primary
// calendar. Per-item failures are collected rather than aborting the sync.
func (g *GoogleCalendar) CreateEvents(ctx context.Context, items []entities.ActionItem, meetingTitle string) *entities.CalendarSyncResult {
	token, err := g.loadToken()
	if err != nil {
		return &entities.CalendarSyncResult{
			Success: false,
			Error:   "Not authenticated with Google Calendar",
			AuthURL: g.AuthURL(),
		}
	}

	client := g.oauth.Client(ctx, token)
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return &entities.CalendarSyncResult{
			Success: false,
			Error:   fmt.Sprintf("Calendar sync failed: %v", err),
		}
	}

	result := &entities.CalendarSyncResult{
		Success:       true,
		CreatedEvents: []entities.CalendarEvent{},
		FailedEvents:  []entities.FailedEvent{},
	}

	for _, item := range items {
		event := g.buildEvent(item, meetingTitle)
		created, err := svc.Events.Insert("primary", event).Context(ctx).Do()
		if err != nil {
			if g.logger != nil {
				g.logger.Error("failed to create calendar event",
					zap.String("task", item.Task),
					zap.Error(err),
				)
			}
			result.FailedEvents = append(result.FailedEvents, entities.FailedEvent{
				Task:  item.Task,
				Error: err.Error(),
			})
			continue
		}
		result.CreatedEvents = append(result.CreatedEvents, entities.CalendarEvent{
			ID:    created.Id,
			Title: event.Summary,
			Start: event.Start.DateTime,
			Link:  created.HtmlLink,
			Task:  item.Task,
		})
	}

	result.TotalCreated = len(result.CreatedEvents)
	result.TotalFailed = len(result.FailedEvents)
	return result
}

// buildEvent maps an action item onto a one hour calendar event with
// reminders a day and an hour ahead.
func (g *GoogleCalendar) buildEvent(item entities.ActionItem, meetingTitle string) *calendar.Event {
	start, end := EventTiming(item.Deadline, g.now())

	summary := item.Task
	if len(summary) > 100 {
		summary = summary[:100]
	}
	summary = fmt.Sprintf("%s %s", priorityEmoji(item.Priority), summary)

	event := &calendar.Event{
		Summary:     summary,
		Description: eventDescription(item, meetingTitle, g.now()),
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	if strings.Contains(item.Assignee, "@") {
		event.Attendees = []*calendar.EventAttendee{{Email: item.Assignee}}
	}
	return event
}

func priorityEmoji(priority string) string {
	switch priority {
	case entities.PriorityHigh:
		return "🔴"
	case entities.PriorityMedium:
		return "🟡"
	case entities.PriorityLow:
		return "🟢"
	default:
		return "📋"
	}
}

func eventDescription(item entities.ActionItem, meetingTitle string, now time.Time) string {
	lines := []string{
		fmt.Sprintf("📋 Action Item from: %s", meetingTitle),
		"",
		fmt.Sprintf("Task: %s", item.Task),
		fmt.Sprintf("Assignee: %s", item.Assignee),
		fmt.Sprintf("Deadline: %s", item.Deadline),
		fmt.Sprintf("Priority: %s", item.Priority),
		"",
		fmt.Sprintf("Generated by Meeting Insights on %s", now.Format("January 2, 2006 at 3:04 PM")),
		"",
		"Complete this task and update your team on progress.",
	}
	return strings.Join(lines, "\n")
}

// EventTiming derives a one hour event window from a deadline phrase.
// Phrases without a recognizable day land tomorrow at 10 AM.
func EventTiming(deadline string, now time.Time) (time.Time, time.Time) {
	lower := strings.ToLower(deadline)
	var start time.Time

	switch {
	case strings.Contains(lower, "today"):
		start = atHour(now, 16)
	case strings.Contains(lower, "tomorrow"):
		start = atHour(now.AddDate(0, 0, 1), 9)
	case strings.Contains(lower, "this week") || strings.Contains(lower, "end of week"):
		daysAhead := int(time.Friday - now.Weekday())
		if daysAhead <= 0 {
			daysAhead += 7
		}
		start = atHour(now.AddDate(0, 0, daysAhead), 15)
	case strings.Contains(lower, "next week"):
		daysAhead := 8 - int(now.Weekday())
		if daysAhead > 7 {
			daysAhead = 1
		}
		start = atHour(now.AddDate(0, 0, daysAhead), 9)
	default:
		if target, ok := weekdayIn(lower); ok {
			daysAhead := int(target - now.Weekday())
			if daysAhead <= 0 {
				daysAhead += 7
			}
			start = atHour(now.AddDate(0, 0, daysAhead), 10)
		} else {
			start = atHour(now.AddDate(0, 0, 1), 10)
		}
	}

	return start, start.Add(time.Hour)
}

func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

func weekdayIn(s string) (time.Weekday, bool) {
	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	for _, d := range days {
		if strings.Contains(s, strings.ToLower(d.String())) {
			return d, true
		}
	}
	return time.Sunday, false
}

func (g *GoogleCalendar) loadToken() (*oauth2.Token, error) {
	f, err := os.Open(g.tokenFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

func (g *GoogleCalendar) saveToken(token *oauth2.Token) error {
	f, err := os.OpenFile(g.tokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}
