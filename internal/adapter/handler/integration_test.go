package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/meetinglab/meeting-insights/internal/infrastructure/email"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/external/calendar"
	"github.com/meetinglab/meeting-insights/internal/infrastructure/report"
	"github.com/meetinglab/meeting-insights/pkg/config"
	pkgvalidator "github.com/meetinglab/meeting-insights/pkg/validator"
)

func newIntegrationApp(t *testing.T) *echo.Echo {
	t.Helper()

	sender := email.NewSender(&config.SMTPConfig{Host: "smtp.example.com", Port: "587"}, nil)
	cal := calendar.NewGoogleCalendar(&config.GoogleConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/v1/integrations/calendar/callback",
		TokenFile:    filepath.Join(t.TempDir(), "token.json"),
	}, nil)
	exporter := report.NewExcelExporter(t.TempDir(), nil)

	e := echo.New()
	e.Validator = pkgvalidator.New()
	cfg := &config.Config{Server: config.ServerConfig{Environment: "test"}}
	NewRouter(cfg, nil, NewIntegration(sender, cal, exporter, nil)).Setup(e)
	return e
}

func TestSendEmail_NoCredentials(t *testing.T) {
	e := newIntegrationApp(t)

	body := `{"meeting_data":{"summary":"We shipped."},"email_config":{"recipients":["team@example.com"]}}`
	rec := doJSON(e, http.MethodPost, "/v1/integrations/email", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var env errEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if env.Code != 300 {
		t.Errorf("unexpected code %d", env.Code)
	}
	if !strings.Contains(env.Info, "Email credentials not provided") {
		t.Errorf("unexpected info %q", env.Info)
	}
}

func TestSendEmail_ValidationFailure(t *testing.T) {
	e := newIntegrationApp(t)

	body := `{"meeting_data":{"summary":"We shipped."},"email_config":{"recipients":["not-an-address"]}}`
	rec := doJSON(e, http.MethodPost, "/v1/integrations/email", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"code":101`) {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestCalendarAuth(t *testing.T) {
	e := newIntegrationApp(t)

	rec := doJSON(e, http.MethodGet, "/v1/integrations/calendar/auth", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var data struct {
		AuthURL string `json:"auth_url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !strings.Contains(data.AuthURL, "client_id=client-id") {
		t.Errorf("unexpected auth URL %q", data.AuthURL)
	}
}

func TestCalendarCallback_MissingCode(t *testing.T) {
	e := newIntegrationApp(t)

	rec := doJSON(e, http.MethodGet, "/v1/integrations/calendar/callback", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "authorization code is required") {
		t.Errorf("unexpected body %s", rec.Body.String())
	}
}

func TestCalendarStatus_Unauthenticated(t *testing.T) {
	e := newIntegrationApp(t)

	rec := doJSON(e, http.MethodGet, "/v1/integrations/calendar/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", rec.Code)
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var data struct {
		Authenticated bool   `json:"authenticated"`
		Status        string `json:"status"`
		AuthURL       string `json:"auth_url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Authenticated {
		t.Error("expected unauthenticated status")
	}
	if data.AuthURL == "" {
		t.Error("expected an auth URL")
	}
}

func TestCalendarSync_NotAuthenticated(t *testing.T) {
	e := newIntegrationApp(t)

	body := `{"action_items":[{"task":"Review budget","priority":"High"}]}`
	rec := doJSON(e, http.MethodPost, "/v1/integrations/calendar/sync", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Not authenticated with Google Calendar") {
		t.Errorf("expected in-band auth failure, got %s", rec.Body.String())
	}
}

func TestSendAndSync_ReportsPartialFailure(t *testing.T) {
	e := newIntegrationApp(t)

	body := `{"meeting_data":{"summary":"We shipped."},"email_config":{"recipients":["team@example.com"]},"sync_calendar":false}`
	rec := doJSON(e, http.MethodPost, "/v1/integrations/send-and-sync", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var data struct {
		Email struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		} `json:"email"`
		OverallSuccess bool `json:"overall_success"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Email.Success || data.OverallSuccess {
		t.Error("expected failure without SMTP credentials")
	}
	if data.Email.Error != "Email credentials not provided" {
		t.Errorf("unexpected email error %q", data.Email.Error)
	}
}

func TestExportReport(t *testing.T) {
	e := newIntegrationApp(t)

	body := `{"meeting_title":"Sprint Planning","summary":"We shipped.","action_items":[{"id":1,"task":"Review budget","priority":"High"}]}`
	rec := doJSON(e, http.MethodPost, "/v1/integrations/report", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var data struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !strings.HasSuffix(data.Path, ".xlsx") {
		t.Errorf("unexpected report path %q", data.Path)
	}
	if _, err := os.Stat(data.Path); err != nil {
		t.Errorf("report file not written: %v", err)
	}
}
