package mail

import (
	"github.com/muhammadheryan/fashion-directory/cmd/config"
	"gopkg.in/gomail.v2"
)

// Sender delivers one HTML mail.
type Sender interface {
	Send(to, subject, body string) error
}

type EmailSender struct {
	cfg *config.Config
}

func NewEmailSender(cfg *config.Config) *EmailSender {
	return &EmailSender{cfg: cfg}
}

func (e *EmailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Mail.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Mail.SMTPHost,
		e.cfg.Mail.SMTPPort,
		e.cfg.Mail.SMTPUser,
		e.cfg.Mail.SMTPPassword,
	)

	return d.DialAndSend(m)
}
