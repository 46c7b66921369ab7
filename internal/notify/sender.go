package notify

import (
	"errors"

	"gopkg.in/gomail.v2"

	"github.com/BruksfildServices01/vetclinic-api/internal/config"
)

// ErrNotConfigured is returned when no SMTP host is set; callers treat it
// as "mail disabled".
var ErrNotConfigured = errors.New("notify: smtp not configured")

type Sender interface {
	Send(to, subject, body string) error
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	s := &SMTPSender{from: cfg.MailFrom}
	if cfg.SMTPEnabled() {
		s.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return s
}

func (s *SMTPSender) Send(to, subject, body string) error {
	if s.dialer == nil {
		return ErrNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	return s.dialer.DialAndSend(m)
}
