// Package mailer sends reminder emails over plain SMTP.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"study-assistant/config"
	"study-assistant/pkg/log"
)

// Mailer is the interface consumed by the notification engine.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type implMailer struct {
	addr string
	auth smtp.Auth
	from string
	l    log.Logger
}

// New builds an SMTP mailer. Auth is skipped when no username is configured,
// which covers local relay setups.
func New(cfg config.SMTPConfig, l log.Logger) Mailer {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	return &implMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		auth: auth,
		from: cfg.From,
		l:    l,
	}
}

// Send delivers a single plain-text message. net/smtp has no context support,
// so ctx is checked once up front; a connection-level timeout belongs to the
// SMTP server configuration.
func (m *implMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(b.String())); err != nil {
		m.l.Errorf(ctx, "pkg.mailer.Send to=%s: %v", to, err)
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
