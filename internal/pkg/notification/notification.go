package notification

import (
	"context"
	"fmt"
	"net/smtp"

	"travel-service/config"

	"github.com/jordan-wright/email"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

type SMTPMailer struct {
	cfg *config.SMTPConfig
}

func (m *SMTPMailer) Send(_ context.Context, to []string, subject, body string) error {
	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = to
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return e.Send(addr, auth)
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	Log *otelzap.Logger
}

func (m *LogMailer) Send(ctx context.Context, to []string, subject, body string) error {
	m.Log.Ctx(ctx).Info("mail not sent, smtp disabled",
		zap.Strings("to", to),
		zap.String("subject", subject),
	)
	return nil
}

func NewMailer(cfg *config.SMTPConfig, log *otelzap.Logger) Mailer {
	if cfg.Host == "" {
		return &LogMailer{Log: log}
	}
	return &SMTPMailer{cfg: cfg}
}
