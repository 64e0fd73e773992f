package services

import (
	"gopkg.in/gomail.v2"
)

// Mailer sends notification emails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

// NewMailer creates a Mailer. from doubles as the SMTP username; to is the
// notification recipient.
func NewMailer(host string, port int, user, password, to string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   user,
		to:     to,
	}
}

// Send delivers a single HTML email.
func (m *Mailer) Send(subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, "Portfolio")
	msg.SetHeader("To", m.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return m.dialer.DialAndSend(msg)
}
