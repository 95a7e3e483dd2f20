package mailer

import (
	"context"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/launcherlock/answer-relay/internal/config"
	"github.com/launcherlock/answer-relay/internal/logger"
)

// smtpMailer is the SMTP-submission implementation of [Mailer].
type smtpMailer struct {
	addr     string
	username string
	password string
	from     string

	logger *logger.Logger
}

// NewSMTPMailer constructs a [Mailer] that submits messages over SMTP
// with STARTTLS and PLAIN auth (auth is skipped when no username is
// configured, for local relays).
func NewSMTPMailer(cfg config.Mail, logger *logger.Logger) Mailer {
	return &smtpMailer{
		addr:     cfg.SMTPAddress,
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
		logger:   logger,
	}
}

// Send implements [Mailer].
func (m *smtpMailer) Send(ctx context.Context, to string, subject string, textBody string) error {
	log := logger.FromContext(ctx)

	to = strings.TrimSpace(to)
	if m.from == "" || to == "" {
		return fmt.Errorf("mail sender and destination are required")
	}

	var auth sasl.Client
	if m.username != "" {
		auth = sasl.NewPlainClient("", m.username, m.password)
	}

	msg := m.compose(to, subject, textBody)
	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, strings.NewReader(msg)); err != nil {
		log.Err(err).Str("to", to).Msg("mail send failed")
		return fmt.Errorf("send mail: %w", err)
	}

	log.Info().Str("to", to).Msg("mail dispatched")
	return nil
}

// compose renders a minimal RFC 5322 message with a UTF-8 safe subject.
func (m *smtpMailer) compose(to string, subject string, textBody string) string {
	var b strings.Builder
	b.WriteString("From: " + m.from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + time.Now().UTC().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(textBody)
	b.WriteString("\r\n")
	return b.String()
}
