package mailer

import (
	"bytes"
	"fmt"
	"io"
	"net/smtp"
	"time"

	"github.com/emersion/go-message/mail"
)

// Mailer sends plain-text notification mail over SMTP.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func New(host, port, user, pass, from string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, from: from}
}

// Send composes an RFC 5322 message and delivers it to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	msg, err := compose(m.from, to, subject, body)
	if err != nil {
		return err
	}

	addr := m.host + ":" + m.port
	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func compose(from, to, subject, body string) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Name: "JobTrackr", Address: from}})
	h.SetAddressList("To", []*mail.Address{{Address: to}})
	h.SetSubject(subject)

	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("compose mail: %w", err)
	}
	if _, err := io.WriteString(w, body); err != nil {
		w.Close()
		return nil, fmt.Errorf("compose mail body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("compose mail: %w", err)
	}

	return buf.Bytes(), nil
}
