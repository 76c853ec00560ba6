package email

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/meetinglab/meeting-insights/pkg/config"
)

func testSender(cfg *config.SMTPConfig, send func(string, smtp.Auth, string, []string, []byte) error) *Sender {
	s := NewSender(cfg, nil)
	s.send = send
	s.now = func() time.Time { return digestNow }
	return s
}

func TestSendDigest_MissingCredentials(t *testing.T) {
	s := testSender(&config.SMTPConfig{Host: "smtp.example.com", Port: "587"}, nil)

	result := s.SendDigest([]string{"team@example.com"}, "Digest", sampleDigest())
	if result.Success {
		t.Fatal("expected failure without credentials")
	}
	if result.Error != "Email credentials not provided" {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestSendDigest_NoRecipients(t *testing.T) {
	cfg := &config.SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "bot", Password: "secret"}
	s := testSender(cfg, nil)

	result := s.SendDigest(nil, "Digest", sampleDigest())
	if result.Success {
		t.Fatal("expected failure without recipients")
	}
	if result.Error != "No recipients specified" {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestSendDigest_BuildsMultipartMessage(t *testing.T) {
	cfg := &config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "bot@example.com",
		Password: "secret",
	}

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	s := testSender(cfg, func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	})

	recipients := []string{"alice@example.com", "bob@example.com"}
	result := s.SendDigest(recipients, "Weekly Digest", sampleDigest())
	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if result.Message != "Meeting digest sent to 2 recipients" {
		t.Errorf("unexpected message %q", result.Message)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("unexpected addr %q", gotAddr)
	}
	if gotFrom != "bot@example.com" {
		t.Errorf("expected username fallback for from, got %q", gotFrom)
	}
	if len(gotTo) != 2 {
		t.Errorf("unexpected recipients %v", gotTo)
	}

	msg := string(gotMsg)
	for _, want := range []string{
		"From: bot@example.com\r\n",
		"To: alice@example.com, bob@example.com\r\n",
		"Subject: Weekly Digest\r\n",
		"MIME-Version: 1.0\r\n",
		`multipart/alternative; boundary="meeting-digest-boundary"`,
		"Content-Type: text/plain; charset=utf-8",
		"Content-Type: text/html; charset=utf-8",
		"Content-Transfer-Encoding: quoted-printable",
		"--meeting-digest-boundary--",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestSendDigest_DeliveryFailure(t *testing.T) {
	cfg := &config.SMTPConfig{Host: "smtp.example.com", Port: "587", Username: "bot", Password: "secret"}
	s := testSender(cfg, func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	})

	result := s.SendDigest([]string{"team@example.com"}, "Digest", sampleDigest())
	if result.Success {
		t.Fatal("expected delivery failure")
	}
	if !strings.Contains(result.Error, "Failed to send email") {
		t.Errorf("unexpected error %q", result.Error)
	}
}

func TestSendDigest_PrefersConfiguredFrom(t *testing.T) {
	cfg := &config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		Username: "bot@example.com",
		Password: "secret",
		From:     "meetings@example.com",
	}

	var gotFrom string
	s := testSender(cfg, func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error {
		gotFrom = from
		return nil
	})

	if result := s.SendDigest([]string{"team@example.com"}, "Digest", sampleDigest()); !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if gotFrom != "meetings@example.com" {
		t.Errorf("unexpected from %q", gotFrom)
	}
}
