package email

import (
	"fmt"
	"mime/quotedprintable"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/meetinglab/meeting-insights/internal/domain/entities"
	"github.com/meetinglab/meeting-insights/pkg/config"
)

// Sender delivers meeting digests over SMTP with STARTTLS.
type Sender struct {
	cfg    *config.SMTPConfig
	logger *zap.Logger
	send   func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
	now    func() time.Time
}

// NewSender creates a digest sender from SMTP config.
func NewSender(cfg *config.SMTPConfig, logger *zap.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
		now:    time.Now,
	}
}

// SendDigest renders and sends a meeting digest to the recipients. Input
// and delivery failures are reported in the result rather than returned.
func (s *Sender) SendDigest(recipients []string, subject string, data DigestData) *entities.EmailResult {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return &entities.EmailResult{Success: false, Error: "Email credentials not provided"}
	}
	if len(recipients) == 0 {
		return &entities.EmailResult{Success: false, Error: "No recipients specified"}
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	now := s.now()
	html, err := RenderHTML(data, now)
	if err != nil {
		return &entities.EmailResult{Success: false, Error: fmt.Sprintf("Failed to send email: %v", err)}
	}
	text := RenderText(data, now)

	msg := buildMessage(from, recipients, subject, text, html)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)

	if err := s.send(addr, auth, from, recipients, msg); err != nil {
		if s.logger != nil {
			s.logger.Error("email delivery failed", zap.Error(err))
		}
		return &entities.EmailResult{Success: false, Error: fmt.Sprintf("Failed to send email: %v", err)}
	}

	if s.logger != nil {
		s.logger.Info("meeting digest sent", zap.Int("recipients", len(recipients)))
	}
	return &entities.EmailResult{
		Success:    true,
		Message:    fmt.Sprintf("Meeting digest sent to %d recipients", len(recipients)),
		Recipients: recipients,
		Subject:    subject,
	}
}

// buildMessage assembles a multipart/alternative MIME message with plain
// text and HTML parts.
func buildMessage(from string, to []string, subject, text, html string) []byte {
	boundary := "meeting-digest-boundary"
	var sb strings.Builder

	fmt.Fprintf(&sb, "From: %s\r\n", from)
	fmt.Fprintf(&sb, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&sb, "Subject: %s\r\n", subject)
	sb.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&sb, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	sb.WriteString("\r\n")

	writePart(&sb, boundary, "text/plain; charset=utf-8", text)
	writePart(&sb, boundary, "text/html; charset=utf-8", html)
	fmt.Fprintf(&sb, "--%s--\r\n", boundary)

	return []byte(sb.String())
}

func writePart(sb *strings.Builder, boundary, contentType, body string) {
	fmt.Fprintf(sb, "--%s\r\n", boundary)
	fmt.Fprintf(sb, "Content-Type: %s\r\n", contentType)
	sb.WriteString("Content-Transfer-Encoding: quoted-printable\r\n\r\n")
	qp := quotedprintable.NewWriter(sb)
	qp.Write([]byte(body))
	qp.Close()
	sb.WriteString("\r\n")
}
