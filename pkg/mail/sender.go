package mail

import (
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

//go:generate mockgen -source=sender.go -destination=sender_mock.go -package=mail

type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string) error
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	from   string
	dialer Dialer
}

// SendMail sends a multipart message, the text part is only added when textBody is set.
func (s *sender) SendMail(to []string, subject, htmlBody, textBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("sender.SendMail: no recipients")
	}
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)

	if textBody != "" {
		m.SetBody("text/plain", textBody)
	}
	if htmlBody != "" {
		if textBody != "" {
			m.AddAlternative("text/html", htmlBody)
		} else {
			m.SetBody("text/html", htmlBody)
		}
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(from, username, password, host string, port int) Sender {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 10 * time.Second
	return &sender{
		from:   from,
		dialer: dialer,
	}
}
